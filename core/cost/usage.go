// Package cost - usage-derived components (egress and recordings)
package cost

import (
	"github.com/shopspring/decimal"

	"gomeet-cost/core/pricing"
	"gomeet-cost/core/types"
)

// Egress quantity model constants. The SFU forwards only active speaker
// streams, so bandwidth scales with active participants rather than the
// full meeting size.
const (
	// optimizedUploadMbps is the reduced per-speaker upstream bitrate
	optimizedUploadMbps = 1.5

	// compressedReceiveMbps is the downstream bitrate per forwarded stream
	compressedReceiveMbps = 0.8

	// maxReceiveStreams caps forwarded streams per participant
	// (active speakers plus one screen share)
	maxReceiveStreams = 6

	// mbpsToGBPerHour converts a sustained Mbps rate to GB transferred per hour
	mbpsToGBPerHour = 0.45

	// avgMeetingHours is the average meeting duration (45 minutes)
	avgMeetingHours = 0.75

	// fullCapacityRatio is the share of meetings running at full size
	fullCapacityRatio = 0.6

	// partialCapacityLoad is the load factor of the remaining meetings
	partialCapacityLoad = 0.3

	// businessDaysPerMonth scales daily usage to a month
	businessDaysPerMonth = 22

	// peakShare splits monthly egress into peak and off-peak windows
	peakShare = 0.6
)

// Recording quantity model constants. Only active streams are recorded,
// and not every meeting enables recording.
const (
	// recordedStreamRatio is the share of participants whose streams
	// end up in the recording mix
	recordedStreamRatio = 0.15

	// maxRecordedStreams caps recorded streams per meeting
	maxRecordedStreams = 8

	// recordingBitrateMbps is the storage-optimized recording bitrate
	recordingBitrateMbps = 1.0

	// recordingAdoptionRate is the share of meetings that record
	recordingAdoptionRate = 0.7

	// coldStorageMonths is the archive retention after the hot window
	coldStorageMonths = 11
)

// BandwidthEgress derives the monthly egress volume from the meeting
// assumptions and prices it against the tiered schedule.
func (e *Engine) BandwidthEgress() types.BandwidthCost {
	req := e.Bandwidth

	activeSpeakers := int(float64(req.ParticipantsPerMeeting) * req.ActiveSpeakersRatio)
	uploadMbps := float64(activeSpeakers) * optimizedUploadMbps

	receiveStreams := activeSpeakers + 1
	if receiveStreams > maxReceiveStreams {
		receiveStreams = maxReceiveStreams
	}
	downloadPerParticipant := float64(receiveStreams) * compressedReceiveMbps
	downloadMbps := downloadPerParticipant * float64(req.ParticipantsPerMeeting)

	audioMbps := float64(req.ParticipantsPerMeeting) * req.AudioBitrateKbps / 1000
	perMeetingMbps := uploadMbps + downloadMbps + audioMbps

	gbPerMeeting := perMeetingMbps * mbpsToGBPerHour * avgMeetingHours

	fullCapacity := int(float64(req.ConcurrentMeetings) * fullCapacityRatio)
	partialCapacity := req.ConcurrentMeetings - fullCapacity
	dailyGB := gbPerMeeting*float64(fullCapacity) +
		gbPerMeeting*partialCapacityLoad*float64(partialCapacity)

	monthlyTB := dailyGB * businessDaysPerMonth / 1024

	monthly := pricing.TieredBandwidthCost(monthlyTB, e.Book.BandwidthTiers)

	return types.BandwidthCost{
		Component:          types.ComponentBandwidth,
		PerMeetingMbps:     perMeetingMbps,
		PeakBandwidthTB:    monthlyTB * peakShare,
		OffPeakBandwidthTB: monthlyTB * (1 - peakShare),
		TotalBandwidthTB:   monthlyTB,
		MonthlyCost:        monthly,
		AnnualCost:         types.Annual(monthly),
	}
}

// RecordingStorage derives recording volumes and prices the hot window
// on block storage and the archive window on the cold tier.
func (e *Engine) RecordingStorage() types.RecordingStorageCost {
	req := e.Recording

	activeStreams := int(float64(req.ParticipantsPerMeeting) * recordedStreamRatio)
	if activeStreams > maxRecordedStreams {
		activeStreams = maxRecordedStreams
	}

	perHourGB := recordingBitrateMbps * 3600 / 8 / 1024
	perMeetingGB := perHourGB * float64(activeStreams) * req.AvgMeetingDurationHours

	dailyMeetings := int(float64(req.ConcurrentMeetings) * recordingAdoptionRate)
	dailyGB := perMeetingGB * float64(dailyMeetings)
	compressedDailyGB := dailyGB * req.CompressionRatio

	hotGB := compressedDailyGB * float64(req.HotStorageDays)
	coldGB := compressedDailyGB * coldStorageMonths * 30

	hotMonthly := decimal.NewFromFloat(hotGB).Mul(e.Book.BlockStoragePerGB)
	coldMonthly := decimal.NewFromFloat(coldGB).Mul(req.ColdStoragePerGB)
	total := hotMonthly.Add(coldMonthly)

	return types.RecordingStorageCost{
		Component:              types.ComponentRecordings,
		PerMeetingGB:           perMeetingGB,
		DailyStorageGB:         dailyGB,
		CompressedDailyGB:      compressedDailyGB,
		HotStorageGB:           hotGB,
		ColdStorageGB:          coldGB,
		HotStorageMonthlyCost:  hotMonthly,
		ColdStorageMonthlyCost: coldMonthly,
		TotalMonthly:           total,
		TotalAnnual:            types.Annual(total),
	}
}
