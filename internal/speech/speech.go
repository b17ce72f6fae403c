// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package speech decides how a card is voiced: a pre-recorded clip or
// synthesized Arabic speech. The decision is pure; the actual engines are
// external collaborators behind small interfaces. When no collaborator is
// attached the directive travels to the device in the API response and the
// device does the audio work.
package speech

import (
	"context"
	"fmt"

	"nutq/internal/models"
)

// Fixed Arabic voice profile used for all synthesis.
const (
	Locale = "ar-SA"
	Rate   = 0.9
	Pitch  = 1.0
)

// Kind says which audio path a directive takes.
type Kind string

const (
	KindClip Kind = "clip"
	KindTTS  Kind = "tts"
)

// Directive is the dispatch decision for one audible event.
type Directive struct {
	Kind    Kind    `json:"kind"`
	ClipURI string  `json:"clipUri,omitempty"`
	Text    string  `json:"text,omitempty"`
	Locale  string  `json:"locale,omitempty"`
	Rate    float64 `json:"rate,omitempty"`
	Pitch   float64 `json:"pitch,omitempty"`
}

// Request is what a synthesizer collaborator receives. Fire-and-forget:
// there is no cancellation once issued.
type Request struct {
	Text   string
	Locale string
	Rate   float64
	Pitch  float64
}

// Synthesizer is the speech-engine collaborator.
type Synthesizer interface {
	Speak(ctx context.Context, req Request) error
}

// Player is the audio-playback collaborator. Implementations own
// load/play/unload of the clip and release resources on completion.
type Player interface {
	Play(ctx context.Context, uri string) error
}

// PlaybackError reports a recorded clip that failed to play (missing or
// corrupt file). Reported to the caller, never absorbed — and it must not
// block or mutate session state.
type PlaybackError struct {
	URI string
	Err error
}

func (e *PlaybackError) Error() string {
	return fmt.Sprintf("speech: playback of %q failed: %v", e.URI, e.Err)
}

func (e *PlaybackError) Unwrap() error {
	return e.Err
}

// Decide returns the directive for a card under the current TTS preference:
// the recorded clip when TTS is off and the card has one, synthesized
// Arabic otherwise. Read-only with respect to settings.
func Decide(card models.Card, useTTS bool) Directive {
	if !useTTS && card.AudioURI != "" {
		return Directive{Kind: KindClip, ClipURI: card.AudioURI}
	}
	return ttsDirective(card.LabelAr)
}

func ttsDirective(text string) Directive {
	return Directive{
		Kind:   KindTTS,
		Text:   text,
		Locale: Locale,
		Rate:   Rate,
		Pitch:  Pitch,
	}
}

// Dispatcher applies directives to the attached collaborators. Either may
// be nil, in which case that path is decision-only.
type Dispatcher struct {
	synth  Synthesizer
	player Player
}

// NewDispatcher returns a dispatcher over the given collaborators.
func NewDispatcher(synth Synthesizer, player Player) *Dispatcher {
	return &Dispatcher{synth: synth, player: player}
}

// PlayCard decides and executes the audio for one card tap. A clip that
// fails to play comes back as *PlaybackError alongside the directive; the
// caller's session state stands either way.
func (d *Dispatcher) PlayCard(ctx context.Context, card models.Card, useTTS bool) (Directive, error) {
	dir := Decide(card, useTTS)
	return dir, d.apply(ctx, dir)
}

// SpeakText synthesizes an utterance. Empty text issues no request — an
// empty utterance must never reach the speech engine.
func (d *Dispatcher) SpeakText(ctx context.Context, text string) (Directive, bool, error) {
	if text == "" {
		return Directive{}, false, nil
	}
	dir := ttsDirective(text)
	return dir, true, d.apply(ctx, dir)
}

func (d *Dispatcher) apply(ctx context.Context, dir Directive) error {
	switch dir.Kind {
	case KindClip:
		if d.player == nil {
			return nil
		}
		if err := d.player.Play(ctx, dir.ClipURI); err != nil {
			return &PlaybackError{URI: dir.ClipURI, Err: err}
		}
	case KindTTS:
		if d.synth == nil {
			return nil
		}
		if err := d.synth.Speak(ctx, Request{
			Text: dir.Text, Locale: dir.Locale, Rate: dir.Rate, Pitch: dir.Pitch,
		}); err != nil {
			return fmt.Errorf("speech: synthesis failed: %w", err)
		}
	}
	return nil
}
