package sink

// Frame is the server→client envelope written on a session's wire. Kind
// selects which payload fields are meaningful.
type Frame struct {
	Kind     string            `json:"kind"`
	Group    string            `json:"group,omitempty"`
	Sender   string            `json:"sender,omitempty"`
	Message  string            `json:"message,omitempty"`
	Name     string            `json:"name,omitempty"`
	Status   string            `json:"status,omitempty"`
	Names    []string          `json:"names,omitempty"`
	Token    string            `json:"token,omitempty"`
	Contacts []Contact         `json:"contacts,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
	Error    *WireError        `json:"error,omitempty"`
}

type Contact struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

// WireError mirrors the structured error taxonomy so peers never have to
// parse message strings.
type WireError struct {
	Code        string `json:"code"`
	Group       string `json:"group,omitempty"`
	Participant string `json:"participant,omitempty"`
	Status      string `json:"status,omitempty"`
	Detail      string `json:"detail,omitempty"`
}

// Frame kinds.
const (
	KindContactList   = "contact_list"
	KindStatusChanged = "status_changed"
	KindGroupMembers  = "group_members"
	KindDirectMessage = "direct_message"
	KindGroupMessage  = "group_message"
	KindMemberJoined  = "member_joined"
	KindMemberLeft    = "member_left"
	KindGroupMetadata = "group_metadata"
	KindLoggedIn      = "logged_in"
	KindRegistered    = "registered"
	KindOK            = "ok"
	KindError         = "error"
)
