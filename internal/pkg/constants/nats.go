package constants

// NATS Subjects
const (
	// SubjectDispatchAll matches every dispatch event
	SubjectDispatchAll = "dispatch.>"

	// Project events
	SubjectProjectCreated = "dispatch.project.created"

	// Payment events
	SubjectPaymentCompleted = "dispatch.payment.completed"
)
