package components

import (
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
)

const (
	pulseDim    = "○"
	pulseBright = "●"
	pulseHeld   = "‖"

	pulseAngularFrequency = 6.0
	pulseDampingRatio     = 0.6

	// a beat is bright for pulseOnTicks and dim for pulseOffTicks
	pulseOnTicks  = 4
	pulseOffTicks = 6

	pulseThreshold = 0.5
)

// Pulse animates the live indicator with a spring between dim and bright
type Pulse struct {
	spring   harmonica.Spring
	position float64
	velocity float64
	target   float64
	active   bool
	ticks    int
}

// NewPulse creates an inactive pulse
func NewPulse() *Pulse {
	return &Pulse{
		spring: harmonica.NewSpring(harmonica.FPS(UITicksPerSecond), pulseAngularFrequency, pulseDampingRatio),
	}
}

// Start begins animating
func (p *Pulse) Start() {
	if p.active {
		return
	}

	p.active = true
	p.ticks = 0
	p.target = 1
}

// Stop freezes the indicator in the held frame
func (p *Pulse) Stop() {
	p.active = false
	p.ticks = 0
	p.target = 0
	p.position = 0
	p.velocity = 0
}

// Update advances the animation by one UI tick
func (p *Pulse) Update() {
	if !p.active {
		return
	}

	p.ticks = (p.ticks + 1) % (pulseOnTicks + pulseOffTicks)
	if p.ticks < pulseOnTicks {
		p.target = 1
	} else {
		p.target = 0
	}

	p.position, p.velocity = p.spring.Update(p.position, p.velocity, p.target)
}

// Frame returns the glyph for the current spring position
func (p *Pulse) Frame() string {
	if !p.active {
		return pulseHeld
	}

	if p.position < pulseThreshold {
		return pulseDim
	}

	return pulseBright
}

// Render returns the styled frame
func (p *Pulse) Render(style lipgloss.Style) string {
	return style.Render(p.Frame())
}

// IsActive reports whether the pulse is animating
func (p *Pulse) IsActive() bool {
	return p.active
}
