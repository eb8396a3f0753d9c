package kv

// Key layout shared by the hub services. Kept in one place so prefix scans
// and per-record keys cannot drift apart.
const (
	ProfilePrefix      = "user:"
	FeedbackPrefix     = "feedback:"
	OwnerIndexPrefix   = "userFeedback:"
	InboxPrefix        = "notifications:"
	ResourcePrefix     = "resource:"
	DepartmentPrefix   = "department:"
	AnnouncementPrefix = "announcement:"
)

func ProfileKey(userID string) string    { return ProfilePrefix + userID }
func FeedbackKey(id string) string       { return FeedbackPrefix + id }
func OwnerIndexKey(userID string) string { return OwnerIndexPrefix + userID }
func InboxKey(userID string) string      { return InboxPrefix + userID }
func ResourceKey(id string) string       { return ResourcePrefix + id }
func DepartmentKey(id string) string     { return DepartmentPrefix + id }
func AnnouncementKey(id string) string   { return AnnouncementPrefix + id }
