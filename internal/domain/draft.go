package domain

import "time"

// DraftStep - шаг мастера создания события. 0 означает закрытый мастер.
type DraftStep int

const (
	StepClosed DraftStep = iota
	StepMainInfo
	StepPhotos
	StepTicketing
	StepVenue
)

const (
	FirstStep = StepMainInfo
	FinalStep = StepVenue
)

var stepNames = map[DraftStep]string{
	StepClosed:    "closed",
	StepMainInfo:  "main_info",
	StepPhotos:    "photos",
	StepTicketing: "ticketing",
	StepVenue:     "venue",
}

func (s DraftStep) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return "unknown"
}

// Draft - накапливаемый черновик события. EventID заполнен только в режиме редактирования.
type Draft struct {
	EventID     string `json:"event_id,omitempty"`
	OrganizerID string `json:"organizer_id"`
	EventInfo
}

func (d Draft) Clone() Draft {
	d.EventInfo = d.EventInfo.Clone()
	return d
}

// EditMode сообщает, редактирует ли черновик существующее событие.
func (d Draft) EditMode() bool {
	return d.EventID != ""
}

type DraftSession struct {
	ID        string    `json:"id"`
	Step      DraftStep `json:"step"`
	Draft     Draft     `json:"draft"`
	UpdatedAt time.Time `json:"updated_at"`
}
