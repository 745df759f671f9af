package smbios

import "fmt"

// Type is the structure type discriminant from the header.
type Type uint8

const (
	TypeBIOS Type = iota
	TypeSystem
	TypeBaseBoard
	TypeChassis
	TypeProcessor
	TypeMemoryController
	TypeMemoryModule
	TypeCache
	TypePortConnector
	TypeSystemSlots
	TypeOnBoardDevices
	TypeOEMStrings
	TypeSystemConfigurationOptions
	TypeBIOSLanguage
	TypeGroupAssociations
	TypeSystemEventLog
	TypePhysicalMemoryArray
	TypeMemoryDevice
	TypeMemoryError32
	TypeMemoryArrayMappedAddress
	TypeMemoryDeviceMappedAddress
	TypeBuiltInPointingDevice
	TypePortableBattery
	TypeSystemReset
	TypeHardwareSecurity
	TypeSystemPowerControls
	TypeVoltageProbe
	TypeCoolingDevice
	TypeTemperatureProbe
	TypeElectricalCurrentProbe
	TypeOutOfBandRemoteAccess
	TypeBISEntryPoint
	TypeSystemBoot
	TypeMemoryError64
	TypeManagementDevice
	TypeManagementDeviceComponent
	TypeManagementDeviceThresholdData
	TypeMemoryChannel
	TypeIPMIDevice
	TypeSystemPowerSupply
	TypeAdditionalInformation
	TypeOnboardDevicesExtended
	TypeManagementControllerHostInterface
	TypeTPMDevice
	TypeProcessorAdditional /*44*/

	TypeInactive   Type = 126
	TypeEndOfTable Type = 127
)

var typeNames = map[Type]string{
	TypeBIOS:                              "BIOS Information",
	TypeSystem:                            "System Information",
	TypeBaseBoard:                         "Base Board Information",
	TypeChassis:                           "Chassis Information",
	TypeProcessor:                         "Processor Information",
	TypeMemoryController:                  "Memory Controller Information",
	TypeMemoryModule:                      "Memory Module Information",
	TypeCache:                             "Cache Information",
	TypePortConnector:                     "Port Connector Information",
	TypeSystemSlots:                       "System Slots",
	TypeOnBoardDevices:                    "On Board Devices Information",
	TypeOEMStrings:                        "OEM Strings",
	TypeSystemConfigurationOptions:        "System Configuration Options",
	TypeBIOSLanguage:                      "BIOS Language Information",
	TypeGroupAssociations:                 "Group Associations",
	TypeSystemEventLog:                    "System Event Log",
	TypePhysicalMemoryArray:               "Physical Memory Array",
	TypeMemoryDevice:                      "Memory Device",
	TypeMemoryError32:                     "32-bit Memory Error Information",
	TypeMemoryArrayMappedAddress:          "Memory Array Mapped Address",
	TypeMemoryDeviceMappedAddress:         "Memory Device Mapped Address",
	TypeBuiltInPointingDevice:             "Built-in Pointing Device",
	TypePortableBattery:                   "Portable Battery",
	TypeSystemReset:                       "System Reset",
	TypeHardwareSecurity:                  "Hardware Security",
	TypeSystemPowerControls:               "System Power Controls",
	TypeVoltageProbe:                      "Voltage Probe",
	TypeCoolingDevice:                     "Cooling Device",
	TypeTemperatureProbe:                  "Temperature Probe",
	TypeElectricalCurrentProbe:            "Electrical Current Probe",
	TypeOutOfBandRemoteAccess:             "Out-of-band Remote Access",
	TypeBISEntryPoint:                     "Boot Integrity Services Entry Point",
	TypeSystemBoot:                        "System Boot Information",
	TypeMemoryError64:                     "64-bit Memory Error Information",
	TypeManagementDevice:                  "Management Device",
	TypeManagementDeviceComponent:         "Management Device Component",
	TypeManagementDeviceThresholdData:     "Management Device Threshold Data",
	TypeMemoryChannel:                     "Memory Channel",
	TypeIPMIDevice:                        "IPMI Device Information",
	TypeSystemPowerSupply:                 "System Power Supply",
	TypeAdditionalInformation:             "Additional Information",
	TypeOnboardDevicesExtended:            "Onboard Devices Extended Information",
	TypeManagementControllerHostInterface: "Management Controller Host Interface",
	TypeTPMDevice:                         "TPM Device",
	TypeProcessorAdditional:               "Processor Additional Information",
	TypeInactive:                          "Inactive",
	TypeEndOfTable:                        "End Of Table",
}

// Known reports whether t has a typed decoding.
func (t Type) Known() bool {
	_, ok := typeNames[t]
	return ok
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	if t >= 128 {
		return fmt.Sprintf("OEM-specific (0x%02X)", uint8(t))
	}
	return fmt.Sprintf("Unknown (%d)", uint8(t))
}
