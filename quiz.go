package nandoku

import (
	"context"
	"log"
	"math/rand"
)

// DistractorGenerator produces wrong-answer candidates for a place name.
type DistractorGenerator interface {
	GenerateDistractors(ctx context.Context, name string) ([]string, error)
}

// DistractorCache stores distractor sets keyed by place name. A nil slice
// from Lookup means a miss.
type DistractorCache interface {
	Lookup(ctx context.Context, name string) ([]string, error)
	Store(ctx context.Context, name string, options []string) error
}

// FallbackDistractors is served whenever generation fails so the quiz
// always renders, even with the generator and cache both down.
var FallbackDistractors = []string{"ダミー1", "ダミー2", "ダミー3"}

// QuizBuilder assembles quiz payloads from place records, pulling
// distractors from the cache when possible and from the generator
// otherwise.
type QuizBuilder struct {
	generator DistractorGenerator
	cache     DistractorCache
}

// NewQuizBuilder creates a builder with its collaborators injected. A nil
// cache disables caching entirely; every request then regenerates.
func NewQuizBuilder(generator DistractorGenerator, cache DistractorCache) *QuizBuilder {
	return &QuizBuilder{
		generator: generator,
		cache:     cache,
	}
}

// BuildQuiz produces a shuffled quiz payload for a place. Generation and
// cache failures never surface: generation degrades to a fixed placeholder
// set, a cache outage degrades to "always regenerate".
func (qb *QuizBuilder) BuildQuiz(ctx context.Context, place PlaceRecord) QuizPayload {
	distractors := qb.lookupDistractors(ctx, place.Name)
	if distractors == nil {
		distractors = qb.generateDistractors(ctx, place.Name)
	}

	options := make([]string, 0, len(distractors)+1)
	options = append(options, place.Yomi)
	options = append(options, distractors...)
	rand.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return QuizPayload{
		ID:            place.ID,
		Name:          place.Name,
		Options:       options,
		CorrectAnswer: place.Yomi,
	}
}

func (qb *QuizBuilder) lookupDistractors(ctx context.Context, name string) []string {
	if qb.cache == nil {
		return nil
	}
	distractors, err := qb.cache.Lookup(ctx, name)
	if err != nil {
		log.Printf("Cache lookup failed for %q, regenerating: %v", name, err)
		return nil
	}
	if distractors != nil {
		VerboseLog("Cache hit for %q", name)
	}
	return distractors
}

func (qb *QuizBuilder) generateDistractors(ctx context.Context, name string) []string {
	distractors, err := qb.generator.GenerateDistractors(ctx, name)
	if err != nil {
		log.Printf("Distractor generation failed for %q, using fallback: %v", name, err)
		return FallbackDistractors
	}

	if qb.cache != nil {
		if err := qb.cache.Store(ctx, name, distractors); err != nil {
			log.Printf("Cache store failed for %q: %v", name, err)
		}
	}
	return distractors
}
