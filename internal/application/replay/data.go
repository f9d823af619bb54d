package replay

// FrameInput records one tick of input with compact keys
type FrameInput struct {
	F  int  `json:"f"`            // Tick number
	L  bool `json:"l,omitempty"`  // Left held
	R  bool `json:"r,omitempty"`  // Right held
	JP bool `json:"jp,omitempty"` // Jump pressed
	PP bool `json:"pp,omitempty"` // Pause pressed
	RP bool `json:"rp,omitempty"` // Restart pressed
}

// ReplayData is everything a session needs to play a run back: the seed
// and start level rebuild the exact same world, the frames replay the
// player. Simulation randomness derives from the seed, so nothing else
// has to be captured.
type ReplayData struct {
	Version    string       `json:"version"`
	Seed       int64        `json:"seed"`
	StartLevel int          `json:"startLevel"`
	StartTime  string       `json:"startTime"`
	Frames     []FrameInput `json:"frames"`
}
