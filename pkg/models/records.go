// Copyright 2025 greenBin
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

// Package models defines the seven record kinds persisted by the collection
// stores: trash cans, vehicles, rounds, reports, complaints, notifications
// and users.
//
// Every record is keyed by an integer id unique within its own collection.
// Cross-record references (a round's vehicle, a report's round) are weak:
// they carry an id only and may dangle after a deletion. Readers must treat
// an unresolvable reference as unknown rather than as an error.
package models

import (
	"regexp"
	"time"

	"github.com/MeBouha/greenBin-sub000/pkg/standarderrors"
)

// DateLayout is the on-disk date format shared by rounds, reports and
// complaints.
const DateLayout = "2006-01-02"

// WasteType classifies what a trash can collects.
type WasteType string

const (
	WastePlastic WasteType = "plastic"
	WasteGlass   WasteType = "glass"
	WastePaper   WasteType = "paper"
	WasteOther   WasteType = "other"
)

// FillStatus is the externally driven fill level of a trash can. There is no
// automatic decay or forced progression; collection crews set full cans back
// to empty.
type FillStatus string

const (
	FillEmpty FillStatus = "empty"
	FillHalf  FillStatus = "half"
	FillFull  FillStatus = "full"
)

// Availability marks whether a vehicle or field user is free or assigned to
// a running round.
type Availability string

const (
	Available Availability = "available"
	InService Availability = "in-service"
)

// ComplaintStatus is the lifecycle state of a citizen complaint. It is
// monotonic in practice: a resolved complaint never regresses.
type ComplaintStatus string

const (
	ComplaintNew        ComplaintStatus = "new"
	ComplaintInProgress ComplaintStatus = "in-progress"
	ComplaintResolved   ComplaintStatus = "resolved"
)

// ComplaintCategory classifies a complaint.
type ComplaintCategory string

const (
	CategorySanitary   ComplaintCategory = "sanitary"
	CategorySchedule   ComplaintCategory = "schedule"
	CategoryCollection ComplaintCategory = "collection"
	CategoryOther      ComplaintCategory = "other"
)

// Role is a user's function in the municipality.
type Role string

const (
	RoleAdmin              Role = "admin"
	RoleRoundLeader        Role = "round-leader"
	RoleWorker             Role = "worker"
	RoleMunicipalManager   Role = "municipal-manager"
	RoleEnvironmentManager Role = "environment-manager"
	RoleRoadsManager       Role = "roads-manager"
	RoleCitizen            Role = "citizen"
)

// AccountState marks whether a user may authenticate.
type AccountState string

const (
	AccountActive  AccountState = "active"
	AccountBlocked AccountState = "blocked"
)

// AttendanceStatus marks a worker's presence on a round report.
type AttendanceStatus string

const (
	Present AttendanceStatus = "present"
	Absent  AttendanceStatus = "absent"
)

// plateRe matches the national plate format: 3 digits, "TUN", 4 digits.
var plateRe = regexp.MustCompile(`^[0-9]{3}TUN[0-9]{4}$`)

// TrashCan is a collection point.
type TrashCan struct {
	ID         int
	Address    string
	Latitude   float64
	Longitude  float64
	WasteType  WasteType
	FillStatus FillStatus
}

func (t TrashCan) RecordID() int { return t.ID }

func (t TrashCan) WithRecordID(id int) TrashCan {
	t.ID = id
	return t
}

func (t TrashCan) Validate() error {
	if t.Address == "" {
		return standarderrors.NewValidationError("address", "must not be empty")
	}

	switch t.WasteType {
	case WastePlastic, WasteGlass, WastePaper, WasteOther:
	default:
		return standarderrors.NewValidationError("wasteType", "unknown waste type %q", t.WasteType)
	}

	switch t.FillStatus {
	case FillEmpty, FillHalf, FillFull:
	default:
		return standarderrors.NewValidationError("fillStatus", "unknown fill status %q", t.FillStatus)
	}

	return nil
}

// Vehicle is a collection truck. DriverID is a weak reference into the user
// collection and may dangle.
type Vehicle struct {
	ID           int
	Plate        string
	DriverID     int
	Availability Availability
}

func (v Vehicle) RecordID() int { return v.ID }

func (v Vehicle) WithRecordID(id int) Vehicle {
	v.ID = id
	return v
}

func (v Vehicle) Validate() error {
	if !plateRe.MatchString(v.Plate) {
		return standarderrors.NewValidationError("plate", "%q does not match NNNTUNNNNN", v.Plate)
	}

	switch v.Availability {
	case Available, InService:
	default:
		return standarderrors.NewValidationError("availability", "unknown availability %q", v.Availability)
	}

	return nil
}

// Round is a scheduled collection run assigning a vehicle and workers to a
// zone on a date.
type Round struct {
	ID        int
	Zone      string
	Date      string
	VehicleID int
	WorkerIDs []int
}

func (r Round) RecordID() int { return r.ID }

func (r Round) WithRecordID(id int) Round {
	r.ID = id
	return r
}

func (r Round) Validate() error {
	if r.Date == "" {
		return standarderrors.NewValidationError("date", "must not be empty")
	}

	if _, err := time.Parse(DateLayout, r.Date); err != nil {
		return standarderrors.NewValidationError("date", "%q is not a valid date (%s)", r.Date, DateLayout)
	}

	return nil
}

// Upcoming reports whether the round's date is on or after the given
// instant. An unparseable date counts as not upcoming.
func (r Round) Upcoming(now time.Time) bool {
	date, err := time.Parse(DateLayout, r.Date)
	if err != nil {
		return false
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	return !date.Before(today)
}

// WorkerAttendance is one worker's presence entry on a report.
type WorkerAttendance struct {
	WorkerID int
	Name     string
	Status   AttendanceStatus
}

// CanCollection is the quantity collected from one trash can.
type CanCollection struct {
	TrashCanID int
	Quantity   float64
}

// ReportMetrics are the optional per-round telemetry figures.
type ReportMetrics struct {
	DistanceKm float64
	CO2Kg      float64
	FuelLiters float64
}

// Report is the historical record a round leader files after a round. It is
// append-only: once deleted it is never resurrected.
type Report struct {
	ID          int
	Date        string
	RoundID     int
	DriverID    int
	Attendance  []WorkerAttendance
	Collections []CanCollection
	Metrics     ReportMetrics
}

func (r Report) RecordID() int { return r.ID }

func (r Report) WithRecordID(id int) Report {
	r.ID = id
	return r
}

// Complaint is a citizen complaint. CitizenID weakly references the user
// collection; the citizen user is created on first use.
type Complaint struct {
	ID        int
	CitizenID int
	Content   string
	Date      string
	Status    ComplaintStatus
	Category  ComplaintCategory
}

func (c Complaint) RecordID() int { return c.ID }

func (c Complaint) WithRecordID(id int) Complaint {
	c.ID = id
	return c
}

func (c Complaint) Validate() error {
	if c.Content == "" {
		return standarderrors.NewValidationError("content", "must not be empty")
	}

	switch c.Status {
	case ComplaintNew, ComplaintInProgress, ComplaintResolved:
	default:
		return standarderrors.NewValidationError("status", "unknown status %q", c.Status)
	}

	switch c.Category {
	case CategorySanitary, CategorySchedule, CategoryCollection, CategoryOther:
	default:
		return standarderrors.NewValidationError("category", "unknown category %q", c.Category)
	}

	return nil
}

// Notification is a purely informational message for a round leader about a
// work item. It has no cascade effects.
type Notification struct {
	ID       int
	LeaderID int
	JobID    int
	Content  string
}

func (n Notification) RecordID() int { return n.ID }

func (n Notification) WithRecordID(id int) Notification {
	n.ID = id
	return n
}

// Account holds a user's credentials. FailedAttempts is persisted with the
// record so the lockout invariant survives without any client-held state.
type Account struct {
	Login          string
	PasswordHash   string
	State          AccountState
	FailedAttempts int
}

// User is any person known to the system, from administrators to citizens.
type User struct {
	ID           int
	Name         string
	Surname      string
	Role         Role
	Account      Account
	Availability Availability
}

func (u User) RecordID() int { return u.ID }

func (u User) WithRecordID(id int) User {
	u.ID = id
	return u
}

func (u User) Validate() error {
	if u.Name == "" {
		return standarderrors.NewValidationError("name", "must not be empty")
	}

	switch u.Role {
	case RoleAdmin, RoleRoundLeader, RoleWorker, RoleMunicipalManager,
		RoleEnvironmentManager, RoleRoadsManager, RoleCitizen:
	default:
		return standarderrors.NewValidationError("role", "unknown role %q", u.Role)
	}

	switch u.Account.State {
	case AccountActive, AccountBlocked:
	default:
		return standarderrors.NewValidationError("account.state", "unknown account state %q", u.Account.State)
	}

	return nil
}
