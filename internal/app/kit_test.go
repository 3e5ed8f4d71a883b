package app

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type slowImages struct {
	mu       sync.Mutex
	inflight int
	peak     int
	fail     string
}

func (f *slowImages) Search(ctx context.Context, query string, perPage int) ([]string, error) {
	f.mu.Lock()
	f.inflight++
	if f.inflight > f.peak {
		f.peak = f.inflight
	}
	f.mu.Unlock()

	time.Sleep(20 * time.Millisecond)

	f.mu.Lock()
	f.inflight--
	f.mu.Unlock()

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if query == f.fail {
		return nil, errors.New("search failed")
	}
	return []string{"https://images.example.com/" + query}, nil
}

func TestMoodboard_BoundedConcurrency(t *testing.T) {
	images := &slowImages{}
	a := testApp(newMemRepo(), images, &fakeMail{})
	a.setup()

	got := a.moodboard(context.Background(), []string{"one", "two", "three"})

	assert.Equal(t, []string{
		"https://images.example.com/one",
		"https://images.example.com/two",
		"https://images.example.com/three",
	}, got)
	assert.LessOrEqual(t, images.peak, searchConcurrency)
}

func TestMoodboard_FailedQueryDoesNotCancelOthers(t *testing.T) {
	images := &slowImages{fail: "one"}
	a := testApp(newMemRepo(), images, &fakeMail{})
	a.setup()

	got := a.moodboard(context.Background(), []string{"one", "two", "three"})

	assert.Equal(t, []string{
		"https://images.example.com/two",
		"https://images.example.com/three",
	}, got)
}
