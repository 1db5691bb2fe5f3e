package config

type WorkerKeyStruct struct{}

func NewWorkerKeyStruct() *WorkerKeyStruct {
	return &WorkerKeyStruct{}
}

// AuditQueue is the Redis list the audit worker drains into audit_log.
func (r *WorkerKeyStruct) AuditQueue() string {
	return "queue:audit_events"
}

var WorkerKey = NewWorkerKeyStruct()
