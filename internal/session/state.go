package session

// State names the stage a generation cycle is in. One cycle runs
// Idle -> LessonPending -> ModuleMetaPending -> ModuleMetaReady, then any
// number of debounced ModuleContentPending -> ModuleContentReady rounds,
// and finally SavePending before resetting to Idle.
type State string

const (
	StateIdle                 State = "IDLE"
	StateLessonPending        State = "LESSON_PENDING"
	StateModuleMetaPending    State = "MODULE_META_PENDING"
	StateModuleMetaReady      State = "MODULE_META_READY"
	StateModuleContentPending State = "MODULE_CONTENT_PENDING"
	StateModuleContentReady   State = "MODULE_CONTENT_READY"
	StateSavePending          State = "SAVE_PENDING"
)
