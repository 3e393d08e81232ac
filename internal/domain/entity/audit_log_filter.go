package entity

// AuditLogFilter narrows an audit log listing. Zero values mean "any".
// Limit of zero returns every matching row.
type AuditLogFilter struct {
	Action string
	UserID int64
	Limit  int
	Offset int
}
