package domain

type Status string

const (
	Stopped Status = "stopped"
	Playing Status = "playing"
	Paused  Status = "paused"
)

const DefaultVolume = 0.7

// Action is what the player process has to do after a state transition.
type Action int

const (
	ActionNone Action = iota
	ActionStart
	ActionPause
	ActionResume
	ActionStop
)

type Playback struct {
	Status   Status
	Category string
	Track    string
	Volume   float64
}

func NewPlayback(volume float64) Playback {
	return Playback{Status: Stopped, Volume: ClampVolume(volume)}
}

// Play selects a track. The same track resumes when paused and is left alone
// when already playing.
func (p *Playback) Play(category, track string) Action {
	if p.Status != Stopped && p.Category == category && p.Track == track {
		if p.Status == Paused {
			p.Status = Playing
			return ActionResume
		}
		return ActionNone
	}
	p.Category = category
	p.Track = track
	p.Status = Playing
	return ActionStart
}

func (p *Playback) Pause() Action {
	if p.Status != Playing {
		return ActionNone
	}
	p.Status = Paused
	return ActionPause
}

func (p *Playback) Resume() Action {
	if p.Status != Paused {
		return ActionNone
	}
	p.Status = Playing
	return ActionResume
}

func (p *Playback) Stop() Action {
	wasActive := p.Status != Stopped
	p.Status = Stopped
	p.Category = ""
	p.Track = ""
	if !wasActive {
		return ActionNone
	}
	return ActionStop
}

func (p *Playback) SetVolume(v float64) {
	p.Volume = ClampVolume(v)
}

func ClampVolume(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
