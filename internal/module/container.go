package module

type ModuleContainer struct {
	Store   Store
	Handler *Handler
}

func NewModuleContainer(store Store) *ModuleContainer {
	return &ModuleContainer{
		Store:   store,
		Handler: NewHandler(store),
	}
}
