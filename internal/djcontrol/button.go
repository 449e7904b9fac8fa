package djcontrol

import (
	"fmt"
	"sort"
	"strconv"
)

// Button is an LED-backed button on the console, numbered by the note the
// console uses for it.
type Button byte

const (
	Magic Button = 46
	Vinyl Button = 45
	Up    Button = 41
	Down  Button = 42
	Load  Button = 44
	Files Button = 43

	ListenA Button = 16
	LoadA   Button = 17
	LoadB   Button = 37
	ListenB Button = 36

	RevB   Button = 32
	FfvB   Button = 33
	CueB   Button = 34
	EjectB Button = 35

	PitchBMinus Button = 30
	PitchBPlus  Button = 31
	PitchBSync  Button = 38
	PitchBReset Button = 39

	EffectB1 Button = 21
	EffectB2 Button = 22
	EffectB3 Button = 23
	EffectB4 Button = 24
	EffectB5 Button = 25
	EffectB6 Button = 26
	EffectB7 Button = 27
	EffectB8 Button = 28

	RevA   Button = 12
	FfvA   Button = 13
	CueA   Button = 14
	EjectA Button = 15

	PitchAMinus Button = 10
	PitchAPlus  Button = 11
	PitchASync  Button = 18
	PitchAReset Button = 19

	EffectA1 Button = 1
	EffectA2 Button = 2
	EffectA3 Button = 3
	EffectA4 Button = 4
	EffectA5 Button = 5
	EffectA6 Button = 6
	EffectA7 Button = 7
	EffectA8 Button = 8
)

var buttonNames = map[Button]string{
	Magic: "Magic", Vinyl: "Vinyl", Up: "Up", Down: "Down", Load: "Load", Files: "Files",
	ListenA: "ListenA", LoadA: "LoadA", LoadB: "LoadB", ListenB: "ListenB",
	RevB: "RevB", FfvB: "FfvB", CueB: "CueB", EjectB: "EjectB",
	PitchBMinus: "PitchBMinus", PitchBPlus: "PitchBPlus", PitchBSync: "PitchBSync", PitchBReset: "PitchBReset",
	EffectB1: "EffectB1", EffectB2: "EffectB2", EffectB3: "EffectB3", EffectB4: "EffectB4",
	EffectB5: "EffectB5", EffectB6: "EffectB6", EffectB7: "EffectB7", EffectB8: "EffectB8",
	RevA: "RevA", FfvA: "FfvA", CueA: "CueA", EjectA: "EjectA",
	PitchAMinus: "PitchAMinus", PitchAPlus: "PitchAPlus", PitchASync: "PitchASync", PitchAReset: "PitchAReset",
	EffectA1: "EffectA1", EffectA2: "EffectA2", EffectA3: "EffectA3", EffectA4: "EffectA4",
	EffectA5: "EffectA5", EffectA6: "EffectA6", EffectA7: "EffectA7", EffectA8: "EffectA8",
}

var buttonsByName = func() map[string]Button {
	m := make(map[string]Button, len(buttonNames))
	for b, name := range buttonNames {
		m[name] = b
	}
	return m
}()

func (b Button) String() string {
	if name, ok := buttonNames[b]; ok {
		return name
	}

	return fmt.Sprintf("Button(%d)", byte(b))
}

// ParseButton returns the button with the given name, e.g. "CueA".
func ParseButton(name string) (Button, error) {
	b, ok := buttonsByName[name]
	if !ok {
		return 0, fmt.Errorf("unknown button %q", name)
	}

	return b, nil
}

// UnmarshalText accepts a button name or its note number.
func (b *Button) UnmarshalText(text []byte) error {
	if parsed, err := ParseButton(string(text)); err == nil {
		*b = parsed
		return nil
	}

	if n, err := strconv.ParseUint(string(text), 10, 8); err == nil {
		if _, ok := buttonNames[Button(n)]; ok {
			*b = Button(n)
			return nil
		}
	}

	return fmt.Errorf("unknown button %q", text)
}

func (b Button) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// Buttons returns every button ordered by note number.
func Buttons() []Button {
	out := make([]Button, 0, len(buttonNames))
	for b := range buttonNames {
		out = append(out, b)
	}

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
