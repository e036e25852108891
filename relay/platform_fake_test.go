package relay

import (
	"errors"
	"fmt"
	"sync"
)

// fakePlatform is an in-memory stand-in for the Discord adapter. It records
// every side effect so tests can assert on exactly what the router emitted.
type fakePlatform struct {
	mu sync.Mutex

	threads map[string]*fakeThread
	dms     map[string][]string
	roles   map[string]map[string]bool
	nextID  int

	failCreateThread bool
	failAssignRole   bool
	failArchive      bool
}

type fakeThread struct {
	parentID string
	title    string
	messages []string
	archived bool
	deleted  bool
}

func newFakePlatform() *fakePlatform {
	return &fakePlatform{
		threads: make(map[string]*fakeThread),
		dms:     make(map[string][]string),
		roles:   make(map[string]map[string]bool),
	}
}

func (f *fakePlatform) SendDirectMessage(userID, content string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.dms[userID] = append(f.dms[userID], content)
	return nil
}

func (f *fakePlatform) CreateThread(parentChannelID, title string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failCreateThread {
		return "", errors.New("fake: thread creation refused")
	}
	f.nextID++
	id := fmt.Sprintf("thread-%d", f.nextID)
	f.threads[id] = &fakeThread{parentID: parentChannelID, title: title}
	return id, nil
}

func (f *fakePlatform) SendThreadMessage(threadID, content string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	thread, ok := f.threads[threadID]
	if !ok || thread.deleted {
		return errors.New("fake: no such thread")
	}
	thread.messages = append(thread.messages, content)
	return nil
}

func (f *fakePlatform) ArchiveThread(threadID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failArchive {
		return errors.New("fake: archive refused")
	}
	thread, ok := f.threads[threadID]
	if !ok || thread.deleted {
		return errors.New("fake: no such thread")
	}
	thread.archived = true
	return nil
}

func (f *fakePlatform) AssignRole(userID, roleID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAssignRole {
		return errors.New("fake: role assignment refused")
	}
	if f.roles[userID] == nil {
		f.roles[userID] = make(map[string]bool)
	}
	f.roles[userID][roleID] = true
	return nil
}

func (f *fakePlatform) HasRole(userID, roleID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.roles[userID][roleID], nil
}

func (f *fakePlatform) ThreadExists(threadID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	thread, ok := f.threads[threadID]
	return ok && !thread.deleted, nil
}

func (f *fakePlatform) deleteThread(threadID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.threads[threadID].deleted = true
}

func (f *fakePlatform) thread(threadID string) fakeThread {
	f.mu.Lock()
	defer f.mu.Unlock()
	return *f.threads[threadID]
}

func (f *fakePlatform) threadCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.threads)
}

func (f *fakePlatform) dmsTo(userID string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.dms[userID]...)
}
