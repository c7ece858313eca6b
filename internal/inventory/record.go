package inventory

import (
	"encoding/json"
	"net"

	"github.com/bmc-toolbox/common"
	"github.com/metal-toolbox/hwmanager/internal/model"
)

// Record is the hardware inventory assembled for the running machine.
//
// The BMC fields are nil when the address is unknown and serialize as null.
// bmc_mac is left out of the serialized record when HasBMCMac is false.
type Record struct {
	Interfaces   []*common.NIC       `json:"interfaces"`
	CPUs         []*common.CPU       `json:"cpu"`
	Disks        []*common.Drive     `json:"disks"`
	Memory       []*common.Memory    `json:"memory"`
	BMCAddress   *string             `json:"bmc_address"`
	BMCV6Address *string             `json:"bmc_v6address"`
	SystemVendor *model.SystemVendor `json:"system_vendor"`
	Boot         *model.BootInfo     `json:"boot"`
	Hostname     string              `json:"hostname"`

	BMCMac    *string `json:"-"`
	HasBMCMac bool    `json:"-"`
}

// MarshalJSON implements json.Marshaler, bmc_mac is included only when it was collected.
func (r *Record) MarshalJSON() ([]byte, error) {
	type record Record

	if !r.HasBMCMac {
		return json.Marshal((*record)(r))
	}

	return json.Marshal(struct {
		record
		BMCMac *string `json:"bmc_mac"`
	}{
		record: record(*r),
		BMCMac: r.BMCMac,
	})
}

func ipString(ip net.IP) *string {
	if ip == nil {
		return nil
	}

	s := ip.String()

	return &s
}

func macString(mac net.HardwareAddr) *string {
	if mac == nil {
		return nil
	}

	s := mac.String()

	return &s
}
