package interfaces

// GameContext is the part of the game the systems may call back into.
// It keeps internal/system free of an import on internal/app.
type GameContext interface {
	// HaltSimulation stops both the tick and the spawn loop.
	HaltSimulation()
}
