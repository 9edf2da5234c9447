package entity

import "time"

// DutyStatus is the availability of a doctor, either set by an administrator
// on the doctor or by the doctor on a schedule window.
type DutyStatus string

const (
	DutyStatusOnDuty  DutyStatus = "ON_DUTY"
	DutyStatusOffDuty DutyStatus = "OFF_DUTY"
)

func (s DutyStatus) IsValid() bool {
	return s == DutyStatusOnDuty || s == DutyStatusOffDuty
}

// ResolveDutyStatus returns the effective status of a doctor at the given instant.
//
// Precedence:
//  1. An OFF_DUTY admin flag wins over every window.
//  2. With the flag ON_DUTY and no windows, the doctor is available at any time.
//  3. Otherwise the doctor is ON_DUTY only if some ON_DUTY window covers the instant.
//     OFF_DUTY windows never mask an overlapping ON_DUTY window.
func ResolveDutyStatus(adminFlag DutyStatus, windows []DoctorSchedule, at time.Time) DutyStatus {
	if adminFlag == DutyStatusOffDuty {
		return DutyStatusOffDuty
	}

	if len(windows) == 0 {
		return DutyStatusOnDuty
	}

	for _, window := range windows {
		if window.Status == DutyStatusOnDuty && window.Covers(at) {
			return DutyStatusOnDuty
		}
	}

	return DutyStatusOffDuty
}
