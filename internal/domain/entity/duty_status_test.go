package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolveDutyStatus(t *testing.T) {
	base := time.Date(2026, 3, 12, 9, 0, 0, 0, time.UTC)
	morning := DoctorSchedule{StartAt: base, EndAt: base.Add(3 * time.Hour), Status: DutyStatusOnDuty}
	morningOff := DoctorSchedule{StartAt: base, EndAt: base.Add(3 * time.Hour), Status: DutyStatusOffDuty}
	afternoon := DoctorSchedule{StartAt: base.Add(5 * time.Hour), EndAt: base.Add(8 * time.Hour), Status: DutyStatusOnDuty}

	tests := []struct {
		name    string
		flag    DutyStatus
		windows []DoctorSchedule
		at      time.Time
		want    DutyStatus
	}{
		{"admin off overrides matching window", DutyStatusOffDuty, []DoctorSchedule{morning}, base.Add(time.Hour), DutyStatusOffDuty},
		{"admin off with no windows", DutyStatusOffDuty, nil, base, DutyStatusOffDuty},
		{"no windows means always on", DutyStatusOnDuty, nil, base.Add(-72 * time.Hour), DutyStatusOnDuty},
		{"inside on window", DutyStatusOnDuty, []DoctorSchedule{morning}, base.Add(time.Hour), DutyStatusOnDuty},
		{"start bound inclusive", DutyStatusOnDuty, []DoctorSchedule{morning}, base, DutyStatusOnDuty},
		{"end bound inclusive", DutyStatusOnDuty, []DoctorSchedule{morning}, base.Add(3 * time.Hour), DutyStatusOnDuty},
		{"just after end", DutyStatusOnDuty, []DoctorSchedule{morning}, base.Add(3*time.Hour + time.Second), DutyStatusOffDuty},
		{"between windows", DutyStatusOnDuty, []DoctorSchedule{morning, afternoon}, base.Add(4 * time.Hour), DutyStatusOffDuty},
		{"second window matches", DutyStatusOnDuty, []DoctorSchedule{morning, afternoon}, base.Add(6 * time.Hour), DutyStatusOnDuty},
		{"only off window covers", DutyStatusOnDuty, []DoctorSchedule{morningOff}, base.Add(time.Hour), DutyStatusOffDuty},
		{"on window wins over overlapping off", DutyStatusOnDuty, []DoctorSchedule{morningOff, morning}, base.Add(time.Hour), DutyStatusOnDuty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveDutyStatus(tt.flag, tt.windows, tt.at))
		})
	}
}

func TestDutyStatus_IsValid(t *testing.T) {
	assert.True(t, DutyStatusOnDuty.IsValid())
	assert.True(t, DutyStatusOffDuty.IsValid())
	assert.False(t, DutyStatus("on_duty").IsValid())
	assert.False(t, DutyStatus("").IsValid())
}
