package persistence

import (
	"context"
	"sync"

	"yt-uploader/domain/model"
)

// ChannelRepository keeps the channel list in a single JSON array file that is
// rewritten wholesale on every change.
type ChannelRepository struct {
	path string
	mu   sync.Mutex
}

func NewChannelRepository(path string) *ChannelRepository {
	return &ChannelRepository{path: path}
}

func (r *ChannelRepository) List(ctx context.Context) ([]model.Channel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

func (r *ChannelRepository) Get(ctx context.Context, id string) (*model.Channel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	channels, err := r.load()
	if err != nil {
		return nil, err
	}
	i := indexOfChannel(channels, id)
	if i < 0 {
		return nil, &model.OpError{Op: "get", Entity: "channel", ID: id, Err: model.ErrNotFound}
	}
	ch := channels[i]
	return &ch, nil
}

func (r *ChannelRepository) Add(ctx context.Context, channel *model.Channel) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	channels, err := r.load()
	if err != nil {
		return err
	}
	if indexOfChannel(channels, channel.ID) >= 0 {
		return &model.OpError{Op: "add", Entity: "channel", ID: channel.ID, Err: model.ErrDuplicateChannel}
	}
	channels = append(channels, *channel)
	return r.save(channels)
}

func (r *ChannelRepository) Update(ctx context.Context, id string, channel *model.Channel) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	channels, err := r.load()
	if err != nil {
		return err
	}
	i := indexOfChannel(channels, id)
	if i < 0 {
		return &model.OpError{Op: "update", Entity: "channel", ID: id, Err: model.ErrNotFound}
	}
	if channel.ID != id {
		if j := indexOfChannel(channels, channel.ID); j >= 0 && j != i {
			return &model.OpError{Op: "update", Entity: "channel", ID: channel.ID, Err: model.ErrDuplicateChannel}
		}
	}
	channels[i] = *channel
	return r.save(channels)
}

func (r *ChannelRepository) Remove(ctx context.Context, id string) (*model.Channel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	channels, err := r.load()
	if err != nil {
		return nil, err
	}
	i := indexOfChannel(channels, id)
	if i < 0 {
		return nil, &model.OpError{Op: "remove", Entity: "channel", ID: id, Err: model.ErrNotFound}
	}
	removed := channels[i]
	channels = append(channels[:i], channels[i+1:]...)
	if err := r.save(channels); err != nil {
		return nil, err
	}
	return &removed, nil
}

func (r *ChannelRepository) load() ([]model.Channel, error) {
	var channels []model.Channel
	if _, err := readJSONFile(r.path, &channels); err != nil {
		return nil, &model.OpError{Op: "read", Entity: "channels", Err: err}
	}
	if channels == nil {
		channels = []model.Channel{}
	}
	return channels, nil
}

func (r *ChannelRepository) save(channels []model.Channel) error {
	if err := writeJSONFile(r.path, channels, 0o600); err != nil {
		return &model.OpError{Op: "write", Entity: "channels", Err: err}
	}
	return nil
}

func indexOfChannel(channels []model.Channel, id string) int {
	for i := range channels {
		if channels[i].ID == id {
			return i
		}
	}
	return -1
}
