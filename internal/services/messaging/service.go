package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// service implements the Service interface
type service struct {
	mu sync.Mutex

	// Random number generator for selecting random messages
	rand *rand.Rand
}

// New creates a new narration service
func New(cfg *Config) Service {
	seed := time.Now().UnixNano()
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	}

	return &service{
		rand: rand.New(rand.NewSource(seed)),
	}
}

// GetNightfallMessage returns the story line that opens a round
func (s *service) GetNightfallMessage(ctx context.Context, input *GetNightfallMessageInput) (*GetNightfallMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var messages []string
	if input.Round <= 1 {
		messages = []string{
			"As the sun sets, the villagers head to bed for an uneasy night's sleep",
			"The first night falls over Upper Lowerstoft, and somewhere a door creaks open",
			"Candles are snuffed out one by one as the village settles down for the night",
		}
	} else {
		messages = []string{
			"As the sun sets, the villagers head to bed for an uneasy night's sleep",
			"Another night, another reason to lock the door twice",
			"The village falls quiet again, but nobody is really sleeping",
			"Night returns, and with it the feeling of being watched",
		}
	}

	return &GetNightfallMessageOutput{
		Title:   fmt.Sprintf("Round %d", input.Round),
		Message: s.pick(messages),
	}, nil
}

// GetDawnMessage returns the story line that opens the night summary
func (s *service) GetDawnMessage(ctx context.Context, input *GetDawnMessageInput) (*GetDawnMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	titles := []string{
		"Wakey wakey",
		"Rise and shine",
		"Morning has broken",
	}

	messages := []string{
		"As the village wakes, its inhabitants cautiously step outside to find out what happened during the night...",
		"The cockerel crows and the villagers peer out from behind their curtains...",
		"Bleary eyed, the village gathers on the green to count heads...",
	}

	return &GetDawnMessageOutput{
		Title:   s.pick(titles),
		Message: s.pick(messages),
	}, nil
}

// GetVillageMeetingMessage returns the story line that opens the day
func (s *service) GetVillageMeetingMessage(ctx context.Context, input *GetVillageMeetingMessageInput) (*GetVillageMeetingMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var messages []string
	switch input.Outcome {
	case NightOutcomeNoAttempt:
		messages = []string{
			"Although the Mafia didn't strike last night, the villagers are still on edge and a village meeting is called...",
			"Nobody died last night, but nobody trusts their neighbour either. A meeting is called...",
		}
	case NightOutcomeSaved:
		messages = []string{
			"Tensions are running high after last night's attempted murder, the villagers gather to discuss...",
			"A close call last night has the whole village talking...",
		}
	case NightOutcomeKilled:
		messages = []string{
			"Horrified at last night's murder, the villagers gather to discuss...",
			"With one fewer face at the meeting, the villagers demand answers...",
		}
	default:
		return &GetVillageMeetingMessageOutput{
			Message: "The villagers gather to discuss...",
		}, nil
	}

	return &GetVillageMeetingMessageOutput{
		Message: s.pick(messages),
	}, nil
}

func (s *service) pick(messages []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return messages[s.rand.Intn(len(messages))]
}
