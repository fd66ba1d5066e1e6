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

package models_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/MeBouha/greenBin-sub000/pkg/models"
	"github.com/MeBouha/greenBin-sub000/pkg/standarderrors"
)

var _ = Describe("Vehicle validation", func() {
	newVehicle := func(plate string) models.Vehicle {
		return models.Vehicle{Plate: plate, Availability: models.Available}
	}

	It("accepts the national plate format", func() {
		Expect(newVehicle("123TUN4567").Validate()).To(Succeed())
	})

	DescribeTable("rejects malformed plates",
		func(plate string) {
			err := newVehicle(plate).Validate()
			Expect(err).To(HaveOccurred())
			Expect(standarderrors.IsValidation(err)).To(BeTrue())
		},
		Entry("too few leading digits", "12TUN4567"),
		Entry("too few trailing digits", "123TUN456"),
		Entry("separators", "123-TUN-4567"),
		Entry("lowercase marker", "123tun4567"),
		Entry("empty", ""),
	)

	It("rejects an unknown availability", func() {
		v := models.Vehicle{Plate: "123TUN4567", Availability: "resting"}
		Expect(standarderrors.IsValidation(v.Validate())).To(BeTrue())
	})
})

var _ = Describe("TrashCan validation", func() {
	It("accepts a complete can", func() {
		can := models.TrashCan{Address: "Rue de Rome", WasteType: models.WastePaper, FillStatus: models.FillHalf}
		Expect(can.Validate()).To(Succeed())
	})

	It("rejects an empty address", func() {
		can := models.TrashCan{WasteType: models.WastePaper, FillStatus: models.FillHalf}
		Expect(standarderrors.IsValidation(can.Validate())).To(BeTrue())
	})

	It("rejects an unknown waste type", func() {
		can := models.TrashCan{Address: "Rue de Rome", WasteType: "metal", FillStatus: models.FillHalf}
		Expect(standarderrors.IsValidation(can.Validate())).To(BeTrue())
	})
})

var _ = Describe("Round", func() {
	It("requires a parseable date", func() {
		round := models.Round{Zone: "Lafayette", Date: "04/03/2024"}
		Expect(standarderrors.IsValidation(round.Validate())).To(BeTrue())

		round.Date = "2024-03-04"
		Expect(round.Validate()).To(Succeed())
	})

	Describe("Upcoming", func() {
		now := time.Date(2024, time.March, 5, 15, 30, 0, 0, time.UTC)

		It("includes today and later dates", func() {
			Expect(models.Round{Date: "2024-03-05"}.Upcoming(now)).To(BeTrue())
			Expect(models.Round{Date: "2024-03-06"}.Upcoming(now)).To(BeTrue())
		})

		It("excludes past and unparseable dates", func() {
			Expect(models.Round{Date: "2024-03-04"}.Upcoming(now)).To(BeFalse())
			Expect(models.Round{Date: "yesterday"}.Upcoming(now)).To(BeFalse())
		})
	})
})

var _ = Describe("User validation", func() {
	It("accepts every known role", func() {
		roles := []models.Role{
			models.RoleAdmin, models.RoleRoundLeader, models.RoleWorker,
			models.RoleMunicipalManager, models.RoleEnvironmentManager,
			models.RoleRoadsManager, models.RoleCitizen,
		}

		for _, role := range roles {
			u := models.User{Name: "Leila", Role: role, Account: models.Account{State: models.AccountActive}}
			Expect(u.Validate()).To(Succeed(), "role %s", role)
		}
	})

	It("rejects an unknown role", func() {
		u := models.User{Name: "Leila", Role: "mayor", Account: models.Account{State: models.AccountActive}}
		Expect(standarderrors.IsValidation(u.Validate())).To(BeTrue())
	})

	It("rejects an unknown account state", func() {
		u := models.User{Name: "Leila", Role: models.RoleCitizen, Account: models.Account{State: "frozen"}}
		Expect(standarderrors.IsValidation(u.Validate())).To(BeTrue())
	})
})

var _ = Describe("WithRecordID", func() {
	It("returns a copy and leaves the receiver untouched", func() {
		original := models.Round{ID: 1, Zone: "Lafayette", Date: "2024-03-04"}
		copied := original.WithRecordID(9)

		Expect(copied.ID).To(Equal(9))
		Expect(original.ID).To(Equal(1))
		Expect(copied.RecordID()).To(Equal(9))
	})
})
