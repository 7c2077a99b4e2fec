package lesson

import (
	"context"

	"github.com/Mahitha-23/ClassPilot/internal/config"
)

// Service runs one generation intent end to end: build the prompt, call the
// provider, assemble the record. Provider failures propagate; a section
// missing from otherwise-successful text never does.
type Service interface {
	GenerateLesson(ctx context.Context, topic string) (*Lesson, error)
	GenerateModuleLesson(ctx context.Context, moduleName string) (*Lesson, error)
	SuggestModuleMetadata(ctx context.Context, topic string) (*ModuleMetadata, error)
}

type service struct {
	provider Provider
}

func NewService(provider Provider) Service {
	return &service{provider: provider}
}

func (s *service) GenerateLesson(ctx context.Context, topic string) (*Lesson, error) {
	log := config.WithContext(ctx)

	raw, err := s.provider.Complete(ctx, BuildPrompt(IntentTopicLesson, topic))
	if err != nil {
		return nil, err
	}

	l := AssembleTopicLesson(raw, topic)
	log.Infof("Generated lesson %q for topic %q", l.Title, topic)
	return &l, nil
}

func (s *service) GenerateModuleLesson(ctx context.Context, moduleName string) (*Lesson, error) {
	log := config.WithContext(ctx)

	raw, err := s.provider.Complete(ctx, BuildPrompt(IntentModuleLesson, moduleName))
	if err != nil {
		return nil, err
	}

	l := AssembleModuleLesson(raw, moduleName)
	log.Infof("Generated lesson %q for module %q", l.Title, moduleName)
	return &l, nil
}

func (s *service) SuggestModuleMetadata(ctx context.Context, topic string) (*ModuleMetadata, error) {
	log := config.WithContext(ctx)

	raw, err := s.provider.Complete(ctx, BuildPrompt(IntentModuleMetadata, topic))
	if err != nil {
		return nil, err
	}

	m := AssembleModuleMetadata(raw, topic)
	log.Infof("Suggested module %q for topic %q", m.ModuleName, topic)
	return &m, nil
}
