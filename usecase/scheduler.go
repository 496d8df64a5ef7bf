package usecase

import (
	"fmt"
	"time"

	"yt-uploader/domain/dto"
	"yt-uploader/domain/model"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"

	slotStep = 15 * time.Minute
)

// Schedule spreads jobs over calendar days starting at plan.StartDate, at most
// VideosPerDay per day. Job i gets day floor(i/VideosPerDay); its time is
// TimeSlot1, or alternates TimeSlot1/TimeSlot2 by index parity when a second
// slot is set. Every scheduled job becomes private. jobs is not modified.
func Schedule(jobs []model.UploadJob, plan dto.SchedulePlan) ([]model.UploadJob, error) {
	start, err := time.ParseInLocation(dateLayout, plan.StartDate, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("%w: start date %q", model.ErrInvalidInput, plan.StartDate)
	}
	if _, err := time.Parse(timeLayout, plan.TimeSlot1); err != nil {
		return nil, fmt.Errorf("%w: time slot %q", model.ErrInvalidInput, plan.TimeSlot1)
	}
	if plan.TimeSlot2 != "" {
		if _, err := time.Parse(timeLayout, plan.TimeSlot2); err != nil {
			return nil, fmt.Errorf("%w: time slot %q", model.ErrInvalidInput, plan.TimeSlot2)
		}
	}
	perDay := plan.VideosPerDay
	if perDay < 1 {
		perDay = 1
	}

	out := make([]model.UploadJob, len(jobs))
	for i := range jobs {
		job := jobs[i].Clone()
		job.ScheduleDate = start.AddDate(0, 0, i/perDay).Format(dateLayout)
		job.ScheduleTime = plan.TimeSlot1
		if plan.TimeSlot2 != "" && i%2 == 1 {
			job.ScheduleTime = plan.TimeSlot2
		}
		job.PrivacyStatus = model.PrivacyPrivate
		out[i] = job
	}
	return out, nil
}

// TimeSlots lists every quarter hour of the day as HH:MM.
func TimeSlots() []string {
	slots := make([]string, 0, 24*time.Hour/slotStep)
	for t := time.Duration(0); t < 24*time.Hour; t += slotStep {
		slots = append(slots, fmt.Sprintf("%02d:%02d", int(t.Hours()), int(t.Minutes())%60))
	}
	return slots
}
