package websocket

import (
	"sync"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/xo-backend/internal/entity"
)

// hub tracks which connections listen to which room.
type hub struct {
	mu      sync.RWMutex
	rooms   map[entity.RoomCode]map[uuid.UUID]*client
	clients map[uuid.UUID]map[entity.RoomCode]struct{}
}

func newHub() *hub {
	return &hub{
		rooms:   make(map[entity.RoomCode]map[uuid.UUID]*client),
		clients: make(map[uuid.UUID]map[entity.RoomCode]struct{}),
	}
}

func (that *hub) subscribe(code entity.RoomCode, c *client) {
	that.mu.Lock()
	defer that.mu.Unlock()

	members, ok := that.rooms[code]
	if !ok {
		members = make(map[uuid.UUID]*client)
		that.rooms[code] = members
	}
	members[c.id] = c

	subscriptions, ok := that.clients[c.id]
	if !ok {
		subscriptions = make(map[entity.RoomCode]struct{})
		that.clients[c.id] = subscriptions
	}
	subscriptions[code] = struct{}{}
}

func (that *hub) unsubscribe(code entity.RoomCode, c *client) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.unsubscribeLocked(code, c.id)
}

// drop - forgets a closed connection everywhere.
func (that *hub) drop(c *client) {
	that.mu.Lock()
	defer that.mu.Unlock()

	for code := range that.clients[c.id] {
		that.unsubscribeLocked(code, c.id)
	}
	delete(that.clients, c.id)
}

func (that *hub) unsubscribeLocked(code entity.RoomCode, id uuid.UUID) {
	if members, ok := that.rooms[code]; ok {
		delete(members, id)
		if len(members) == 0 {
			delete(that.rooms, code)
		}
	}

	if subscriptions, ok := that.clients[id]; ok {
		delete(subscriptions, code)
	}
}

// broadcast - sends frame to every connection of the room except skip.
func (that *hub) broadcast(code entity.RoomCode, frame []byte, skip *client) {
	that.mu.RLock()
	members := make([]*client, 0, len(that.rooms[code]))
	for _, member := range that.rooms[code] {
		if skip != nil && member.id == skip.id {
			continue
		}
		members = append(members, member)
	}
	that.mu.RUnlock()

	for _, member := range members {
		member.enqueue(frame)
	}
}

func (that *hub) members(code entity.RoomCode) int {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return len(that.rooms[code])
}
