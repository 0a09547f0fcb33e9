package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/talbenari/coachflow/internal/llm"
)

// FakeGateway implements llm.Gateway for tests. It records every call and
// answers from a scripted queue, falling back to a canned reply.
type FakeGateway struct {
	mu sync.Mutex

	// Replies are consumed in order; when exhausted, Reply is returned.
	Replies []string
	Reply   string

	// Err, when set, fails every Complete call.
	Err error

	// TranscribeText is returned by Transcribe; TranscribeErr fails it.
	TranscribeText string
	TranscribeErr  error

	Calls           [][]llm.ChatMessage
	TranscribeCalls [][]byte
}

// NewFakeGateway creates a gateway whose every completion is reply.
func NewFakeGateway(reply string) *FakeGateway {
	return &FakeGateway{Reply: reply}
}

func (g *FakeGateway) Complete(_ context.Context, messages []llm.ChatMessage) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	copied := make([]llm.ChatMessage, len(messages))
	copy(copied, messages)
	g.Calls = append(g.Calls, copied)

	if g.Err != nil {
		return "", g.Err
	}
	if n := len(g.Calls) - 1; n < len(g.Replies) {
		return g.Replies[n], nil
	}
	return g.Reply, nil
}

func (g *FakeGateway) Transcribe(_ context.Context, audio []byte) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.TranscribeCalls = append(g.TranscribeCalls, audio)
	if g.TranscribeErr != nil {
		return "", g.TranscribeErr
	}
	return g.TranscribeText, nil
}

// CallCount returns how many Complete calls were made.
func (g *FakeGateway) CallCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.Calls)
}

// LastCall returns the most recent assembled message list, or nil.
func (g *FakeGateway) LastCall() []llm.ChatMessage {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.Calls) == 0 {
		return nil
	}
	return g.Calls[len(g.Calls)-1]
}

// FakeExtractor implements extract.TextExtractor from a path→text map.
// Unknown paths extract to empty text, mirroring the degrade-gracefully
// contract of the real extractor.
type FakeExtractor struct {
	Texts map[string]string
}

func (e *FakeExtractor) ExtractText(path string) string {
	return e.Texts[path]
}

// MemStore implements storage.Store in memory.
type MemStore struct {
	mu    sync.Mutex
	blobs map[string][]byte
	n     int
}

func NewMemStore() *MemStore {
	return &MemStore{blobs: map[string][]byte{}}
}

func (s *MemStore) Save(data []byte, name string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	path := fmt.Sprintf("mem:/%d/%s", s.n, name)
	s.blobs[path] = data
	return path, nil
}

func (s *MemStore) Delete(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.blobs, path)
	return nil
}

func (s *MemStore) Exists(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.blobs[path]
	return ok
}

// BlobCount returns how many blobs the store currently holds.
func (s *MemStore) BlobCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.blobs)
}
