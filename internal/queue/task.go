package queue

type TaskType string

const (
	TaskTypePasswordResetEmail TaskType = "password_reset_email"
	TaskTypeKommoEvent         TaskType = "kommo_event"
)

// Task is what producers enqueue. Which fields are required depends on
// TaskType; ParseMessage enforces it on the way out.
type Task struct {
	TaskType TaskType
	TraceID  *string
	Attempt  int

	CompanyID *int64

	// password_reset_email
	UserID   *int64
	Email    string
	Name     string
	ResetURL string

	// kommo_event
	KommoEventID *int64
	EventType    string
}
