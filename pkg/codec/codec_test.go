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

package codec_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/MeBouha/greenBin-sub000/pkg/codec"
	"github.com/MeBouha/greenBin-sub000/pkg/models"
)

var _ = Describe("TrashCanCodec", func() {
	var c codec.TrashCanCodec

	It("decodes empty input to an empty, non-nil list", func() {
		records, err := c.Decode(nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(records).NotTo(BeNil())
		Expect(records).To(BeEmpty())

		records, err = c.Decode([]byte("  \n\t"))
		Expect(err).NotTo(HaveOccurred())
		Expect(records).To(BeEmpty())
	})

	It("decodes an empty wrapper element to an empty list", func() {
		records, err := c.Decode([]byte(`<trashCans></trashCans>`))
		Expect(err).NotTo(HaveOccurred())
		Expect(records).To(BeEmpty())
	})

	It("round-trips a full collection", func() {
		in := []models.TrashCan{
			{ID: 1, Address: "Rue de Marseille", Latitude: 36.8, Longitude: 10.18, WasteType: models.WastePlastic, FillStatus: models.FillFull},
			{ID: 2, Address: "Avenue Habib Bourguiba", Latitude: 36.79, Longitude: 10.17, WasteType: models.WasteGlass, FillStatus: models.FillEmpty},
		}

		raw, err := c.Encode(in)
		Expect(err).NotTo(HaveOccurred())

		out, err := c.Decode(raw)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal(in))
	})

	It("defaults missing attributes to zero values", func() {
		records, err := c.Decode([]byte(`<trashCans><trashCan id="7"><address>Rue Ibn Khaldoun</address></trashCan></trashCans>`))
		Expect(err).NotTo(HaveOccurred())
		Expect(records).To(HaveLen(1))
		Expect(records[0].ID).To(Equal(7))
		Expect(records[0].Latitude).To(BeZero())
		Expect(records[0].WasteType).To(BeEquivalentTo(""))
	})

	It("emits a well-formed document for an empty collection", func() {
		raw, err := c.Encode([]models.TrashCan{})
		Expect(err).NotTo(HaveOccurred())
		Expect(string(raw)).To(ContainSubstring("<trashCans>"))

		records, err := c.Decode(raw)
		Expect(err).NotTo(HaveOccurred())
		Expect(records).To(BeEmpty())
	})

	It("rejects malformed XML", func() {
		_, err := c.Decode([]byte(`<trashCans><trashCan`))
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("RoundCodec", func() {
	var c codec.RoundCodec

	It("round-trips a round with several workers", func() {
		in := []models.Round{
			{ID: 3, Zone: "Lafayette", Date: "2024-03-04", VehicleID: 2, WorkerIDs: []int{4, 5, 6}},
		}

		raw, err := c.Encode(in)
		Expect(err).NotTo(HaveOccurred())

		out, err := c.Decode(raw)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal(in))
	})

	It("decodes an absent worker list as an empty list", func() {
		records, err := c.Decode([]byte(`<rounds><round id="1" date="2024-03-04" vehicleId="2"><zone>Lafayette</zone></round></rounds>`))
		Expect(err).NotTo(HaveOccurred())
		Expect(records).To(HaveLen(1))
		Expect(records[0].WorkerIDs).NotTo(BeNil())
		Expect(records[0].WorkerIDs).To(BeEmpty())
	})

	It("decodes a single worker as a one-element list", func() {
		records, err := c.Decode([]byte(`<rounds><round id="1" date="2024-03-04" vehicleId="2"><zone>Lafayette</zone><workers><worker id="9"/></workers></round></rounds>`))
		Expect(err).NotTo(HaveOccurred())
		Expect(records[0].WorkerIDs).To(Equal([]int{9}))
	})
})

var _ = Describe("ReportCodec", func() {
	var c codec.ReportCodec

	It("round-trips attendance, collections and metrics", func() {
		in := []models.Report{
			{
				ID:       1,
				Date:     "2024-03-04",
				RoundID:  3,
				DriverID: 2,
				Attendance: []models.WorkerAttendance{
					{WorkerID: 4, Name: "Ali", Status: models.Present},
					{WorkerID: 5, Name: "Sami", Status: models.Absent},
				},
				Collections: []models.CanCollection{
					{TrashCanID: 1, Quantity: 12.5},
				},
				Metrics: models.ReportMetrics{DistanceKm: 18.2, CO2Kg: 5.0, FuelLiters: 7.1},
			},
		}

		raw, err := c.Encode(in)
		Expect(err).NotTo(HaveOccurred())

		out, err := c.Decode(raw)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal(in))
	})

	It("decodes a report without nested lists", func() {
		records, err := c.Decode([]byte(`<reports><report id="2" date="2024-03-06" roundId="3" driverId="2"/></reports>`))
		Expect(err).NotTo(HaveOccurred())
		Expect(records).To(HaveLen(1))
		Expect(records[0].Attendance).To(BeEmpty())
		Expect(records[0].Collections).To(BeEmpty())
		Expect(records[0].Metrics).To(BeZero())
	})
})

var _ = Describe("UserCodec", func() {
	var c codec.UserCodec

	It("round-trips the nested account", func() {
		in := []models.User{
			{
				ID:      1,
				Name:    "Mounir",
				Surname: "Ben Salah",
				Role:    models.RoleRoundLeader,
				Account: models.Account{
					Login:          "mounir",
					PasswordHash:   "$2a$10$abcdefghijklmnopqrstuv",
					State:          models.AccountActive,
					FailedAttempts: 2,
				},
				Availability: models.Available,
			},
		}

		raw, err := c.Encode(in)
		Expect(err).NotTo(HaveOccurred())

		out, err := c.Decode(raw)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal(in))
	})

	It("defaults an absent account element to zero values", func() {
		records, err := c.Decode([]byte(`<users><user id="4" role="citizen" availability="available"><name>Leila</name></user></users>`))
		Expect(err).NotTo(HaveOccurred())
		Expect(records).To(HaveLen(1))
		Expect(records[0].Account).To(BeZero())
	})
})

var _ = Describe("VehicleCodec", func() {
	var c codec.VehicleCodec

	It("round-trips the collection", func() {
		in := []models.Vehicle{
			{ID: 2, Plate: "123TUN4567", DriverID: 3, Availability: models.InService},
		}

		raw, err := c.Encode(in)
		Expect(err).NotTo(HaveOccurred())

		out, err := c.Decode(raw)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal(in))
	})
})

var _ = Describe("ComplaintCodec", func() {
	var c codec.ComplaintCodec

	It("round-trips the collection", func() {
		in := []models.Complaint{
			{ID: 1, CitizenID: 8, Content: "overflowing can on Rue de Rome", Date: "2024-03-05", Status: models.ComplaintNew, Category: models.CategorySanitary},
		}

		raw, err := c.Encode(in)
		Expect(err).NotTo(HaveOccurred())

		out, err := c.Decode(raw)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal(in))
	})
})

var _ = Describe("NotificationCodec", func() {
	var c codec.NotificationCodec

	It("round-trips the collection", func() {
		in := []models.Notification{
			{ID: 1, LeaderID: 2, JobID: 3, Content: "round postponed to tomorrow"},
		}

		raw, err := c.Encode(in)
		Expect(err).NotTo(HaveOccurred())

		out, err := c.Decode(raw)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal(in))
	})
})
