package ws

import "encoding/json"

// Envelope is the client→server frame: an explicit operation name plus an
// op-specific payload. Operations map to typed handlers through the server's
// handler table; there is no reflective dispatch.
type Envelope struct {
	Op      string          `json:"op" validate:"required"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Operation names.
const (
	OpRegister         = "register"
	OpLogin            = "login"
	OpAttach           = "attach"
	OpChangeStatus     = "change_status"
	OpAddContact       = "add_contact"
	OpRemoveContact    = "remove_contact"
	OpJoinGroup        = "join_group"
	OpLeaveGroup       = "leave_group"
	OpGroupMembers     = "group_members"
	OpGroupMetadata    = "group_metadata"
	OpSetGroupMetadata = "set_group_metadata"
	OpUpdateInfo       = "update_info"
	OpDirectMessage    = "direct_message"
	OpGroupMessage     = "group_message"
)

type RegisterPayload struct {
	Name     string `json:"name" validate:"required,max=64"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginPayload struct {
	Name     string `json:"name" validate:"required,max=64"`
	Password string `json:"password" validate:"required"`
}

type AttachPayload struct {
	Token string `json:"token" validate:"required"`
	// SupportsMetadata declares whether this session accepts extended
	// message attributes. Sessions that do not will have metadata stripped
	// through the delivery fallback.
	SupportsMetadata bool `json:"supports_metadata"`
}

type ChangeStatusPayload struct {
	Status string `json:"status" validate:"required,oneof=offline online away"`
}

type ContactPayload struct {
	Contact string `json:"contact" validate:"required"`
}

type GroupPayload struct {
	Group string `json:"group" validate:"required"`
}

type SetGroupMetadataPayload struct {
	Group    string            `json:"group" validate:"required"`
	Metadata map[string]string `json:"metadata" validate:"required,min=1"`
}

type UpdateInfoPayload struct {
	Info string `json:"info" validate:"max=1024"`
}

type DirectMessagePayload struct {
	Recipient string            `json:"recipient" validate:"required"`
	Message   string            `json:"message" validate:"required"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

type GroupMessagePayload struct {
	Group    string            `json:"group" validate:"required"`
	Message  string            `json:"message" validate:"required"`
	Metadata map[string]string `json:"metadata,omitempty"`
}
