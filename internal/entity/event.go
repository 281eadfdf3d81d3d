package entity

// Inbound actions.
const (
	ActionJoin           = "join"
	ActionLeaveRoom      = "leave_room"
	ActionMakeMove       = "make_move"
	ActionUsePowerUp     = "use_power_up"
	ActionRequestNewGame = "request_new_game"
	ActionConfirmNewGame = "confirm_new_game"
	ActionCancelNewGame  = "cancel_new_game"
	ActionChatMessage    = "chat_message"
)

// Outbound actions.
const (
	ActionJoinedRoom       = "joined_room"
	ActionJoinError        = "join_error"
	ActionGameUpdate       = "game_update"
	ActionGameOver         = "game_over"
	ActionGameMessage      = "game_message"
	ActionPowerUpError     = "power_up_error"
	ActionNewGameRequested = "new_game_requested"
	ActionChatUpdate       = "chat_update"
	ActionError            = "error"
)

const (
	StatusWin  = "win"
	StatusDraw = "draw"
)

// Audience selects which connections receive an event.
type Audience int

const (
	// ToRoom reaches every connection subscribed to the room.
	ToRoom Audience = iota
	// ToSender reaches only the connection that triggered the event.
	ToSender
	// ToOthers reaches the room except the triggering connection.
	ToOthers
)

// Event is something the gateway has to deliver after a state transition.
type Event struct {
	Action   string
	Audience Audience
	Room     RoomCode
	Payload  any
}

type JoinedRoomPayload struct {
	Room string `json:"room"`
}

type MessagePayload struct {
	Message string `json:"message"`
}

type GameOverPayload struct {
	Winner Username `json:"winner"`
	Loser  Username `json:"loser"`
	Status string   `json:"status"`
}

type NewGameRequestedPayload struct {
	RequestedBy Username `json:"requested_by"`
}

type ChatPayload struct {
	Username Username `json:"username"`
	Message  string   `json:"message"`
}

// RoomUpdate - broadcasts a snapshot of room.
func RoomUpdate(room *Room) Event {
	return Event{Action: ActionGameUpdate, Audience: ToRoom, Room: room.Code, Payload: room.Snapshot()}
}

// RoomMessage - broadcasts an informational line.
func RoomMessage(code RoomCode, message string) Event {
	return Event{Action: ActionGameMessage, Audience: ToRoom, Room: code, Payload: MessagePayload{Message: message}}
}

// SenderEvent - answers only the triggering connection.
func SenderEvent(action string, code RoomCode, message string) Event {
	return Event{Action: action, Audience: ToSender, Room: code, Payload: MessagePayload{Message: message}}
}

// Events is the ordered output of one handled inbound event.
type Events []Event

// Has - reports whether any event carries action.
func (that Events) Has(action string) bool {
	for _, event := range that {
		if event.Action == action {
			return true
		}
	}

	return false
}

// Filter - returns the events carrying action, keeping order.
func (that Events) Filter(action string) Events {
	var filtered Events
	for _, event := range that {
		if event.Action == action {
			filtered = append(filtered, event)
		}
	}

	return filtered
}
