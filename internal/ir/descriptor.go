package ir

import "strconv"

// Frame is the render frame of an object template, derived from its
// attribute bitmask.
type Frame int

const (
	FrameDevice Frame = iota
	FrameOriented
	FrameAnimated
	FrameBeam
)

// Attribute bits that select an object's frame, in priority order.
const (
	AttrShapeFromDirection uint32 = 0x00000100 // Oriented
	AttrIsSelfAnimated     uint32 = 0x00000080 // Animated
	AttrIsBeam             uint32 = 0x00000020 // Beam
)

// FrameFromAttributes picks the frame by first matching bit:
// 0x100 Oriented, then 0x80 Animated, then 0x20 Beam, else Device.
func FrameFromAttributes(attributes uint32) Frame {
	switch {
	case attributes&AttrShapeFromDirection != 0:
		return FrameOriented
	case attributes&AttrIsSelfAnimated != 0:
		return FrameAnimated
	case attributes&AttrIsBeam != 0:
		return FrameBeam
	default:
		return FrameDevice
	}
}

func (f Frame) String() string {
	switch f {
	case FrameOriented:
		return "Oriented"
	case FrameAnimated:
		return "Animated"
	case FrameBeam:
		return "Beam"
	default:
		return "Device"
	}
}

// Initial is the one-letter abbreviation shown in the report's frame column.
func (f Frame) Initial() string {
	return f.String()[:1]
}

// OptionalInt is an id that the binary format marks absent with -1.
type OptionalInt struct {
	Value int32
	Valid bool
}

// OptionalFromRaw maps the -1 sentinel to an absent value. Zero is a
// real id.
func OptionalFromRaw(raw int32) OptionalInt {
	if raw == -1 {
		return OptionalInt{}
	}
	return OptionalInt{Value: raw, Valid: true}
}

// String renders absent values as the empty string.
func (o OptionalInt) String() string {
	if !o.Valid {
		return ""
	}
	return strconv.Itoa(int(o.Value))
}

// ObjectDescriptor is one decoded object template.
type ObjectDescriptor struct {
	Name      string
	ShortName string
	Note      string
	Race      OptionalInt
	Class     OptionalInt
	Frame     Frame

	// Attributes is the raw bitmask Frame was derived from.
	Attributes uint32
}

// Tooltip is the hover text for the object's name cell.
func (o ObjectDescriptor) Tooltip() string {
	return o.Name + ": " + o.Note
}

// ActionKind is the one-byte verb code of an object action.
type ActionKind uint8

const (
	KindCreate   ActionKind = 1
	KindSound    ActionKind = 2
	KindAlter    ActionKind = 3
	KindSparks   ActionKind = 4
	KindEnergy   ActionKind = 5
	KindLand     ActionKind = 6
	KindWarp     ActionKind = 7
	KindMessage  ActionKind = 8
	KindScore    ActionKind = 9
	KindWin      ActionKind = 10
	KindKill     ActionKind = 11
	KindRetarget ActionKind = 12
	KindSpecial  ActionKind = 13
	KindPulse    ActionKind = 14
	KindBeam     ActionKind = 15
	KindFlash    ActionKind = 16
	KindCreate2  ActionKind = 17
	KindDetarget ActionKind = 18
	KindKeyOn    ActionKind = 19
	KindKeyOff   ActionKind = 20
	KindZoom     ActionKind = 21
	KindSelect   ActionKind = 22
	KindAssume   ActionKind = 23
)

var kindNames = map[ActionKind]string{
	KindCreate:   "create",
	KindSound:    "sound",
	KindAlter:    "alter",
	KindSparks:   "sparks",
	KindEnergy:   "energy",
	KindLand:     "land",
	KindWarp:     "warp",
	KindMessage:  "message",
	KindScore:    "score",
	KindWin:      "win",
	KindKill:     "kill",
	KindRetarget: "retarget",
	KindSpecial:  "special",
	KindPulse:    "pulse",
	KindBeam:     "beam",
	KindFlash:    "flash",
	KindCreate2:  "create2",
	KindDetarget: "detarget",
	KindKeyOn:    "keyon",
	KindKeyOff:   "keyoff",
	KindZoom:     "zoom",
	KindSelect:   "select",
	KindAssume:   "assume",
}

// Known reports whether k is one of the named verbs.
func (k ActionKind) Known() bool {
	_, ok := kindNames[k]
	return ok
}

// String returns the verb tag, or "" for unrecognized codes.
func (k ActionKind) String() string {
	return kindNames[k]
}

// alterTypes is keyed by the top byte of an alter action's value.
// Codes 6 and 26 both name location.
var alterTypes = map[int32]string{
	0:  "health",
	1:  "velocity",
	2:  "thrust",
	3:  "max_thrust",
	4:  "max_velocity",
	5:  "max_turn_rate",
	6:  "location",
	7:  "scale",
	8:  "beam",
	9:  "pulse",
	10: "special",
	11: "energy",
	12: "owner",
	13: "hidden",
	14: "cloak",
	15: "offline",
	16: "spin",
	17: "base",
	18: "condition",
	19: "occupation",
	20: "money",
	21: "age",
	22: "attributes",
	26: "location",
}

// AlterTypeName resolves an alter code (value >> 24) to its tag.
func AlterTypeName(code int32) (string, bool) {
	name, ok := alterTypes[code]
	return name, ok
}

// ActionDescriptor is one decoded object action.
type ActionDescriptor struct {
	Kind ActionKind

	// What is the display form of the kind-dependent payload.
	What string

	// Raw is the undecoded 32-bit payload.
	Raw int32
}
