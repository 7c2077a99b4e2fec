package lesson

import "context"

type LessonContainer struct {
	Service Service
	Handler *Handler
}

func NewLessonContainer(ctx context.Context) (*LessonContainer, error) {
	provider, err := NewGeminiProvider(ctx)
	if err != nil {
		return nil, err
	}
	service := NewService(provider)

	return &LessonContainer{
		Service: service,
		Handler: NewHandler(service),
	}, nil
}
