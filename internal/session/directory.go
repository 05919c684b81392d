package session

import "sync"

// Directory is the node-local map of online users to their outbound
// queues. The dispatch server reads it to route pushes; sessions insert
// themselves after claiming the user in the shared cache.
type Directory struct {
	mu       sync.RWMutex
	sessions map[string]*Queue
}

// NewDirectory creates an empty directory.
func NewDirectory() *Directory {
	return &Directory{sessions: make(map[string]*Queue)}
}

// Insert binds userID to q unless an entry already exists. First writer
// wins; the caller must treat a false return as "already online here" and
// abort its session.
func (d *Directory) Insert(userID string, q *Queue) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.sessions[userID]; exists {
		return false
	}
	d.sessions[userID] = q
	return true
}

// Remove drops the entry for userID, if any.
func (d *Directory) Remove(userID string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.sessions, userID)
}

// Get returns the queue for userID.
func (d *Directory) Get(userID string) (*Queue, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	q, ok := d.sessions[userID]
	return q, ok
}

// Len reports the number of online users on this node.
func (d *Directory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.sessions)
}
