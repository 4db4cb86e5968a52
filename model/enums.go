// Copyright 2025 the original author or authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package model

// ElementType is the kind of element a road link points at.
type ElementType int

const (
	ElementTypeRoad ElementType = iota
	ElementTypeJunction
)

var elementTypes = newEnum[ElementType]("elementType", "road", "junction")

func (e ElementType) String() string                { return elementTypes.String(e) }
func (e ElementType) MarshalText() ([]byte, error)  { return elementTypes.marshal(e) }
func (e *ElementType) UnmarshalText(b []byte) error { return elementTypes.unmarshal(e, b) }
func (*ElementType) Expected() string               { return elementTypes.expected() }

// ParseElementType converts a token into an ElementType.
func ParseElementType(s string) (ElementType, error) { return elementTypes.Parse(s) }

// Rule is the basic traffic rule of a road.
type Rule int

const (
	// RightHandTraffic is assumed when a road does not state a rule.
	RightHandTraffic Rule = iota
	LeftHandTraffic
)

var rules = newEnum[Rule]("rule", "RHT", "LHT")

func (r Rule) String() string                { return rules.String(r) }
func (r Rule) MarshalText() ([]byte, error)  { return rules.marshal(r) }
func (r *Rule) UnmarshalText(b []byte) error { return rules.unmarshal(r, b) }
func (*Rule) Expected() string               { return rules.expected() }

// ParseRule converts a token into a Rule.
func ParseRule(s string) (Rule, error) { return rules.Parse(s) }

// ContactPoint is the end of the linked element a link attaches to.
type ContactPoint int

const (
	ContactPointStart ContactPoint = iota
	ContactPointEnd
)

var contactPoints = newEnum[ContactPoint]("contactPoint", "start", "end")

func (c ContactPoint) String() string                { return contactPoints.String(c) }
func (c ContactPoint) MarshalText() ([]byte, error)  { return contactPoints.marshal(c) }
func (c *ContactPoint) UnmarshalText(b []byte) error { return contactPoints.unmarshal(c, b) }
func (*ContactPoint) Expected() string               { return contactPoints.expected() }

// ParseContactPoint converts a token into a ContactPoint.
func ParseContactPoint(s string) (ContactPoint, error) { return contactPoints.Parse(s) }

// ElementDir is the direction on the linked element from which a road is
// entered when the link uses an s-offset.
type ElementDir int

const (
	ElementDirPlus ElementDir = iota
	ElementDirMinus
)

var elementDirs = newEnum[ElementDir]("elementDir", "+", "-")

func (d ElementDir) String() string                { return elementDirs.String(d) }
func (d ElementDir) MarshalText() ([]byte, error)  { return elementDirs.marshal(d) }
func (d *ElementDir) UnmarshalText(b []byte) error { return elementDirs.unmarshal(d, b) }
func (*ElementDir) Expected() string               { return elementDirs.expected() }

// ParseElementDir converts a token into an ElementDir.
func ParseElementDir(s string) (ElementDir, error) { return elementDirs.Parse(s) }

// Access restricts who may use a parking space.  Spaces tagged women or
// handicapped are for vehicles of type car.
type Access int

const (
	AccessAll Access = iota
	AccessCar
	AccessWomen
	AccessHandicapped
	AccessBus
	AccessTruck
	AccessElectric
	AccessResidents
)

var accesses = newEnum[Access]("access",
	"all", "car", "women", "handicapped", "bus", "truck", "electric", "residents")

func (a Access) String() string                { return accesses.String(a) }
func (a Access) MarshalText() ([]byte, error)  { return accesses.marshal(a) }
func (a *Access) UnmarshalText(b []byte) error { return accesses.unmarshal(a, b) }
func (*Access) Expected() string               { return accesses.expected() }

// ParseAccess converts a token into an Access.
func ParseAccess(s string) (Access, error) { return accesses.Parse(s) }

// BorderType is the physical kind of an object border.
type BorderType int

const (
	BorderConcrete BorderType = iota
	BorderCurb
)

var borderTypes = newEnum[BorderType]("borderType", "concrete", "curb")

func (b BorderType) String() string                { return borderTypes.String(b) }
func (b BorderType) MarshalText() ([]byte, error)  { return borderTypes.marshal(b) }
func (b *BorderType) UnmarshalText(t []byte) error { return borderTypes.unmarshal(b, t) }
func (*BorderType) Expected() string               { return borderTypes.expected() }

// ParseBorderType converts a token into a BorderType.
func ParseBorderType(s string) (BorderType, error) { return borderTypes.Parse(s) }

// LaneType is the usage of a lane.
type LaneType int

const (
	LaneTypeNone LaneType = iota
	LaneTypeDriving
	LaneTypeStop
	LaneTypeShoulder
	LaneTypeBiking
	LaneTypeSidewalk
	LaneTypeBorder
	LaneTypeRestricted
	LaneTypeParking
	LaneTypeBidirectional
	LaneTypeMedian
	LaneTypeSpecial1
	LaneTypeSpecial2
	LaneTypeSpecial3
	LaneTypeRoadWorks
	LaneTypeTram
	LaneTypeRail
	LaneTypeEntry
	LaneTypeExit
	LaneTypeOffRamp
	LaneTypeOnRamp
	LaneTypeConnectingRamp
	LaneTypeBus
	LaneTypeTaxi
	LaneTypeHOV
	LaneTypeMwyEntry
	LaneTypeMwyExit
	LaneTypeCurb
)

var laneTypes = newEnum[LaneType]("laneType",
	"none", "driving", "stop", "shoulder", "biking", "sidewalk", "border",
	"restricted", "parking", "bidirectional", "median", "special1", "special2",
	"special3", "roadWorks", "tram", "rail", "entry", "exit", "offRamp",
	"onRamp", "connectingRamp", "bus", "taxi", "HOV", "mwyEntry", "mwyExit",
	"curb")

func (l LaneType) String() string                { return laneTypes.String(l) }
func (l LaneType) MarshalText() ([]byte, error)  { return laneTypes.marshal(l) }
func (l *LaneType) UnmarshalText(b []byte) error { return laneTypes.unmarshal(l, b) }
func (*LaneType) Expected() string               { return laneTypes.expected() }

// ParseLaneType converts a token into a LaneType.
func ParseLaneType(s string) (LaneType, error) { return laneTypes.Parse(s) }

// JunctionType distinguishes regular, virtual and direct junctions.
type JunctionType int

const (
	JunctionTypeDefault JunctionType = iota
	JunctionTypeVirtual
	JunctionTypeDirect
)

var junctionTypes = newEnum[JunctionType]("junctionType", "default", "virtual", "direct")

func (j JunctionType) String() string                { return junctionTypes.String(j) }
func (j JunctionType) MarshalText() ([]byte, error)  { return junctionTypes.marshal(j) }
func (j *JunctionType) UnmarshalText(b []byte) error { return junctionTypes.unmarshal(j, b) }
func (*JunctionType) Expected() string               { return junctionTypes.expected() }

// ParseJunctionType converts a token into a JunctionType.
func ParseJunctionType(s string) (JunctionType, error) { return junctionTypes.Parse(s) }

// ParamPoly3Range is the domain of the parameter p of a parametric cubic.
type ParamPoly3Range int

const (
	// RangeArcLength runs p over [0, length of the geometry].
	RangeArcLength ParamPoly3Range = iota

	// RangeNormalized runs p over [0, 1].
	RangeNormalized
)

var paramPoly3Ranges = newEnum[ParamPoly3Range]("pRange", "arcLength", "normalized")

func (p ParamPoly3Range) String() string                { return paramPoly3Ranges.String(p) }
func (p ParamPoly3Range) MarshalText() ([]byte, error)  { return paramPoly3Ranges.marshal(p) }
func (p *ParamPoly3Range) UnmarshalText(b []byte) error { return paramPoly3Ranges.unmarshal(p, b) }
func (*ParamPoly3Range) Expected() string               { return paramPoly3Ranges.expected() }

// ParseParamPoly3Range converts a token into a ParamPoly3Range.
func ParseParamPoly3Range(s string) (ParamPoly3Range, error) { return paramPoly3Ranges.Parse(s) }
