// SPDX-License-Identifier: Apache-2.0
// Copyright 2025 Canonical Ltd.

package sliceform

import (
	"errors"
	"fmt"

	"github.com/omec-project/slice-webconsole/configmodels"
)

// FieldID identifies one editable leaf of the slice profile.
type FieldID int

const (
	FieldSST FieldID = iota
	FieldSliceProfileId
	FieldPlmnMcc
	FieldPlmnMnc
	FieldSnssaiSst
	FieldSnssaiSd
	FieldSliceProfileName
	FieldDescription
	FieldMaxNumberofUEs
	FieldCoverageAreaTA
	FieldLatencyTime
	FieldUlThptPerUE
	FieldDlThptPerUE
	FieldAvailability
	FieldReliability
	FieldPacketDelayBudget
	FieldMaxNumberofConns
	FieldCpu
	FieldMemory
	FieldStorage
	numFields
)

const (
	SectionSliceProfile = "Slice Profile"
	SectionResources    = "Resources"

	InputText   = "text"
	InputNumber = "number"
)

var ErrUnknownField = errors.New("unknown slice profile field")

type fieldSpec struct {
	name      string
	label     string
	inputType string
	section   string
	get       func(*configmodels.SliceProfile) string
	set       func(*configmodels.SliceProfile, string)
}

// Field is a rendered input: its dot path name, label and current value.
type Field struct {
	ID        FieldID
	Name      string
	Label     string
	InputType string
	Section   string
	Value     string
}

var fieldSpecs = [numFields]fieldSpec{
	FieldSST: {
		"SliceProfile.sST", "SST", InputText, SectionSliceProfile,
		func(p *configmodels.SliceProfile) string { return p.SST },
		func(p *configmodels.SliceProfile, v string) { p.SST = v },
	},
	FieldSliceProfileId: {
		"SliceProfile.sliceProfileId", "Slice Profile ID", InputText, SectionSliceProfile,
		func(p *configmodels.SliceProfile) string { return p.SliceProfileId },
		func(p *configmodels.SliceProfile, v string) { p.SliceProfileId = v },
	},
	FieldPlmnMcc: {
		"SliceProfile.plmnIdList.0.mcc", "MCC", InputText, SectionSliceProfile,
		func(p *configmodels.SliceProfile) string { return p.PlmnIdList[0].Mcc },
		func(p *configmodels.SliceProfile, v string) { p.PlmnIdList[0].Mcc = v },
	},
	FieldPlmnMnc: {
		"SliceProfile.plmnIdList.0.mnc", "MNC", InputText, SectionSliceProfile,
		func(p *configmodels.SliceProfile) string { return p.PlmnIdList[0].Mnc },
		func(p *configmodels.SliceProfile, v string) { p.PlmnIdList[0].Mnc = v },
	},
	FieldSnssaiSst: {
		"SliceProfile.snssai.sst", "SNSSAI SST", InputText, SectionSliceProfile,
		func(p *configmodels.SliceProfile) string { return p.Snssai.Sst },
		func(p *configmodels.SliceProfile, v string) { p.Snssai.Sst = v },
	},
	FieldSnssaiSd: {
		"SliceProfile.snssai.sd", "SNSSAI SD", InputText, SectionSliceProfile,
		func(p *configmodels.SliceProfile) string { return p.Snssai.Sd },
		func(p *configmodels.SliceProfile, v string) { p.Snssai.Sd = v },
	},
	FieldSliceProfileName: {
		"SliceProfile.sliceProfileName", "Slice Profile Name", InputText, SectionSliceProfile,
		func(p *configmodels.SliceProfile) string { return p.SliceProfileName },
		func(p *configmodels.SliceProfile, v string) { p.SliceProfileName = v },
	},
	FieldDescription: {
		"SliceProfile.description", "Description", InputText, SectionSliceProfile,
		func(p *configmodels.SliceProfile) string { return p.Description },
		func(p *configmodels.SliceProfile, v string) { p.Description = v },
	},
	FieldMaxNumberofUEs: {
		"SliceProfile.maxNumberofUEs", "Max Number of UEs", InputNumber, SectionSliceProfile,
		func(p *configmodels.SliceProfile) string { return p.MaxNumberofUEs },
		func(p *configmodels.SliceProfile, v string) { p.MaxNumberofUEs = v },
	},
	FieldCoverageAreaTA: {
		"SliceProfile.coverageAreaTAList.0", "Coverage Area TA List", InputText, SectionSliceProfile,
		func(p *configmodels.SliceProfile) string { return p.CoverageAreaTAList[0] },
		func(p *configmodels.SliceProfile, v string) { p.CoverageAreaTAList[0] = v },
	},
	FieldLatencyTime: {
		"SliceProfile.latency.latencyTime", "Latency Time", InputNumber, SectionSliceProfile,
		func(p *configmodels.SliceProfile) string { return p.Latency.LatencyTime },
		func(p *configmodels.SliceProfile, v string) { p.Latency.LatencyTime = v },
	},
	FieldUlThptPerUE: {
		"SliceProfile.ulThptPerUE.value", "UL Throughput per UE", InputNumber, SectionSliceProfile,
		func(p *configmodels.SliceProfile) string { return p.UlThptPerUE.Value },
		func(p *configmodels.SliceProfile, v string) { p.UlThptPerUE.Value = v },
	},
	FieldDlThptPerUE: {
		"SliceProfile.dlThptPerUE.value", "DL Throughput per UE", InputNumber, SectionSliceProfile,
		func(p *configmodels.SliceProfile) string { return p.DlThptPerUE.Value },
		func(p *configmodels.SliceProfile, v string) { p.DlThptPerUE.Value = v },
	},
	FieldAvailability: {
		"SliceProfile.availability", "Availability", InputNumber, SectionSliceProfile,
		func(p *configmodels.SliceProfile) string { return p.Availability },
		func(p *configmodels.SliceProfile, v string) { p.Availability = v },
	},
	FieldReliability: {
		"SliceProfile.reliability", "Reliability", InputNumber, SectionSliceProfile,
		func(p *configmodels.SliceProfile) string { return p.Reliability },
		func(p *configmodels.SliceProfile, v string) { p.Reliability = v },
	},
	FieldPacketDelayBudget: {
		"SliceProfile.packetDelayBudget", "Packet Delay Budget", InputNumber, SectionSliceProfile,
		func(p *configmodels.SliceProfile) string { return p.PacketDelayBudget },
		func(p *configmodels.SliceProfile, v string) { p.PacketDelayBudget = v },
	},
	FieldMaxNumberofConns: {
		"SliceProfile.maxNumberofConns", "Max Number of Connections", InputNumber, SectionSliceProfile,
		func(p *configmodels.SliceProfile) string { return p.MaxNumberofConns },
		func(p *configmodels.SliceProfile, v string) { p.MaxNumberofConns = v },
	},
	FieldCpu: {
		"SliceProfile.resources.cpu.value", "CPU", InputNumber, SectionResources,
		func(p *configmodels.SliceProfile) string { return p.Resources.Cpu.Value },
		func(p *configmodels.SliceProfile, v string) { p.Resources.Cpu.Value = v },
	},
	FieldMemory: {
		"SliceProfile.resources.memory.value", "Memory", InputNumber, SectionResources,
		func(p *configmodels.SliceProfile) string { return p.Resources.Memory.Value },
		func(p *configmodels.SliceProfile, v string) { p.Resources.Memory.Value = v },
	},
	FieldStorage: {
		"SliceProfile.resources.storage.value", "Storage", InputNumber, SectionResources,
		func(p *configmodels.SliceProfile) string { return p.Resources.Storage.Value },
		func(p *configmodels.SliceProfile, v string) { p.Resources.Storage.Value = v },
	},
}

var fieldsByName = func() map[string]FieldID {
	m := make(map[string]FieldID, numFields)
	for id := FieldID(0); id < numFields; id++ {
		m[fieldSpecs[id].name] = id
	}
	return m
}()

// AllFields lists every editable field in render order.
func AllFields() []FieldID {
	ids := make([]FieldID, 0, numFields)
	for id := FieldID(0); id < numFields; id++ {
		ids = append(ids, id)
	}
	return ids
}

// LookupField resolves an input name such as "SliceProfile.snssai.sd".
func LookupField(name string) (FieldID, error) {
	id, ok := fieldsByName[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return id, nil
}

func (id FieldID) valid() bool {
	return id >= 0 && id < numFields
}

// Name returns the dot path of the field, or "" for an invalid id.
func (id FieldID) Name() string {
	if !id.valid() {
		return ""
	}
	return fieldSpecs[id].name
}

func (id FieldID) String() string {
	if !id.valid() {
		return fmt.Sprintf("FieldID(%d)", int(id))
	}
	return fieldSpecs[id].name
}
