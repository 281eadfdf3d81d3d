package registry

import (
	"fmt"
	"sync"

	"github.com/rocketscienceinc/xo-backend/internal/apperror"
	"github.com/rocketscienceinc/xo-backend/internal/entity"
)

// entry guards a single room. removed is set once the room left the map so that
// callers who fetched the entry before deletion do not act on a dead room.
type entry struct {
	mu      sync.Mutex
	room    *entity.Room
	removed bool
}

// Registry keeps every live room in memory. Each room has its own lock, so events
// on different rooms never wait for each other while events on one room run one at a time.
type Registry struct {
	mu    sync.RWMutex
	rooms map[entity.RoomCode]*entry
}

func New() *Registry {
	return &Registry{
		rooms: make(map[entity.RoomCode]*entry),
	}
}

// CreateOrJoin - creates the room with username as X, or seats username as O.
// Returns a snapshot of the room after the join, or apperror.ErrRoomFull without touching the room.
func (that *Registry) CreateOrJoin(code entity.RoomCode, size int, username entity.Username) (*entity.Room, bool, error) {
	for {
		item, created := that.getOrInsert(code, size, username)

		item.mu.Lock()
		if item.removed {
			// lost a race with the last player leaving; retry with a fresh entry
			item.mu.Unlock()
			continue
		}

		if created {
			snapshot := item.room.Snapshot()
			item.mu.Unlock()

			return snapshot, true, nil
		}

		err := item.room.AddPlayer(username)
		snapshot := item.room.Snapshot()
		item.mu.Unlock()

		if err != nil {
			return snapshot, false, fmt.Errorf("failed to join room: %w", err)
		}

		return snapshot, false, nil
	}
}

// Update - runs fn with exclusive access to the room stored under code.
func (that *Registry) Update(code entity.RoomCode, fn func(room *entity.Room) error) error {
	that.mu.RLock()
	item, ok := that.rooms[code]
	that.mu.RUnlock()

	if !ok {
		return apperror.ErrRoomNotFound
	}

	item.mu.Lock()
	defer item.mu.Unlock()

	if item.removed {
		return apperror.ErrRoomNotFound
	}

	return fn(item.room)
}

// Remove - takes username out of the room and deletes the room once nobody is left.
// It returns a snapshot of what remains, or nil when the room was deleted.
// A username that is not seated yields apperror.ErrNotInRoom and leaves the room alone.
func (that *Registry) Remove(code entity.RoomCode, username entity.Username) (*entity.Room, error) {
	that.mu.RLock()
	item, ok := that.rooms[code]
	that.mu.RUnlock()

	if !ok {
		return nil, apperror.ErrRoomNotFound
	}

	item.mu.Lock()
	defer item.mu.Unlock()

	if item.removed {
		return nil, apperror.ErrRoomNotFound
	}

	if !item.room.RemovePlayer(username) {
		return item.room.Snapshot(), apperror.ErrNotInRoom
	}

	if !item.room.IsEmpty() {
		return item.room.Snapshot(), nil
	}

	item.removed = true

	that.mu.Lock()
	if that.rooms[code] == item {
		delete(that.rooms, code)
	}
	that.mu.Unlock()

	return nil, nil
}

// Get - returns a snapshot of the room.
func (that *Registry) Get(code entity.RoomCode) (*entity.Room, error) {
	var snapshot *entity.Room

	err := that.Update(code, func(room *entity.Room) error {
		snapshot = room.Snapshot()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return snapshot, nil
}

func (that *Registry) Exists(code entity.RoomCode) bool {
	that.mu.RLock()
	defer that.mu.RUnlock()

	_, ok := that.rooms[code]

	return ok
}

func (that *Registry) Len() int {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return len(that.rooms)
}

func (that *Registry) getOrInsert(code entity.RoomCode, size int, username entity.Username) (*entry, bool) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if item, ok := that.rooms[code]; ok {
		return item, false
	}

	item := &entry{room: entity.NewRoom(code, size, username)}
	that.rooms[code] = item

	return item, true
}
