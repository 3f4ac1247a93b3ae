// SPDX-License-Identifier: Apache-2.0
// Copyright 2025 Canonical Ltd.

package configmodels

const (
	LatencyUnitMs      = "ms"
	ThroughputUnitMbps = "Mbps"
	CpuUnit            = "vCPUs"
	MemoryUnit         = "GB"
	StorageUnit        = "TB"
)

// SliceProfileDraft is the request body sent to /api/slice.
type SliceProfileDraft struct {
	SliceProfile SliceProfile `json:"SliceProfile"`
}

// SliceProfile leaves hold the raw text typed into the form, numeric ones included.
type SliceProfile struct {
	SST                string                `json:"sST"`
	SliceProfileId     string                `json:"sliceProfileId"`
	PlmnIdList         []SliceProfilePlmnId  `json:"plmnIdList"`
	Snssai             SliceProfileSnssai    `json:"snssai"`
	SliceProfileName   string                `json:"sliceProfileName"`
	Description        string                `json:"description"`
	MaxNumberofUEs     string                `json:"maxNumberofUEs"`
	CoverageAreaTAList []string              `json:"coverageAreaTAList"`
	Latency            SliceProfileLatency   `json:"latency"`
	UlThptPerUE        SliceProfileQuantity  `json:"ulThptPerUE"`
	DlThptPerUE        SliceProfileQuantity  `json:"dlThptPerUE"`
	Availability       string                `json:"availability"`
	Reliability        string                `json:"reliability"`
	PacketDelayBudget  string                `json:"packetDelayBudget"`
	MaxNumberofConns   string                `json:"maxNumberofConns"`
	Resources          SliceProfileResources `json:"resources"`
}

type SliceProfilePlmnId struct {
	Mcc string `json:"mcc"`
	Mnc string `json:"mnc"`
}

type SliceProfileSnssai struct {
	Sst string `json:"sst"`
	Sd  string `json:"sd"`
}

type SliceProfileLatency struct {
	LatencyTime string `json:"latencyTime"`
	LatencyUnit string `json:"latencyUnit"`
}

// SliceProfileQuantity is a value paired with a fixed unit.
type SliceProfileQuantity struct {
	Value string `json:"value"`
	Unit  string `json:"unit"`
}

type SliceProfileResources struct {
	Cpu     SliceProfileQuantity `json:"cpu"`
	Memory  SliceProfileQuantity `json:"memory"`
	Storage SliceProfileQuantity `json:"storage"`
}

// NewSliceProfileDraft returns a draft with empty leaves, fixed units, and one
// element in each list.
func NewSliceProfileDraft() SliceProfileDraft {
	return SliceProfileDraft{
		SliceProfile: SliceProfile{
			PlmnIdList:         []SliceProfilePlmnId{{}},
			CoverageAreaTAList: []string{""},
			Latency:            SliceProfileLatency{LatencyUnit: LatencyUnitMs},
			UlThptPerUE:        SliceProfileQuantity{Unit: ThroughputUnitMbps},
			DlThptPerUE:        SliceProfileQuantity{Unit: ThroughputUnitMbps},
			Resources: SliceProfileResources{
				Cpu:     SliceProfileQuantity{Unit: CpuUnit},
				Memory:  SliceProfileQuantity{Unit: MemoryUnit},
				Storage: SliceProfileQuantity{Unit: StorageUnit},
			},
		},
	}
}

// Clone returns a copy that shares no slice backing arrays with d.
func (d SliceProfileDraft) Clone() SliceProfileDraft {
	out := d
	out.SliceProfile.PlmnIdList = append([]SliceProfilePlmnId(nil), d.SliceProfile.PlmnIdList...)
	out.SliceProfile.CoverageAreaTAList = append([]string(nil), d.SliceProfile.CoverageAreaTAList...)
	return out
}

// FieldUpdateRequest changes one leaf, addressed by its input name.
type FieldUpdateRequest struct {
	Name  string `json:"name" binding:"required"`
	Value string `json:"value"`
}
