package smbios

type constructor func(Parts) Structure

var constructors = map[Type]constructor{
	TypeBIOS:                              func(p Parts) Structure { return &BIOSInformation{p} },
	TypeSystem:                            func(p Parts) Structure { return &SystemInformation{p} },
	TypeBaseBoard:                         func(p Parts) Structure { return &BaseboardInformation{p} },
	TypeChassis:                           func(p Parts) Structure { return &ChassisInformation{p} },
	TypeProcessor:                         func(p Parts) Structure { return &ProcessorInformation{p} },
	TypeMemoryController:                  func(p Parts) Structure { return &MemoryControllerInformation{p} },
	TypeMemoryModule:                      func(p Parts) Structure { return &MemoryModuleInformation{p} },
	TypeCache:                             func(p Parts) Structure { return &CacheInformation{p} },
	TypePortConnector:                     func(p Parts) Structure { return &PortConnectorInformation{p} },
	TypeSystemSlots:                       func(p Parts) Structure { return &SystemSlots{p} },
	TypeOnBoardDevices:                    func(p Parts) Structure { return &OnBoardDeviceInformation{p} },
	TypeOEMStrings:                        func(p Parts) Structure { return &OEMStrings{p} },
	TypeSystemConfigurationOptions:        func(p Parts) Structure { return &SystemConfigurationOptions{p} },
	TypeBIOSLanguage:                      func(p Parts) Structure { return &BIOSLanguageInformation{p} },
	TypeGroupAssociations:                 func(p Parts) Structure { return &GroupAssociations{p} },
	TypeSystemEventLog:                    func(p Parts) Structure { return &SystemEventLog{p} },
	TypePhysicalMemoryArray:               func(p Parts) Structure { return &PhysicalMemoryArray{p} },
	TypeMemoryDevice:                      func(p Parts) Structure { return &MemoryDevice{p} },
	TypeMemoryError32:                     func(p Parts) Structure { return &MemoryError32{p} },
	TypeMemoryArrayMappedAddress:          func(p Parts) Structure { return &MemoryArrayMappedAddress{p} },
	TypeMemoryDeviceMappedAddress:         func(p Parts) Structure { return &MemoryDeviceMappedAddress{p} },
	TypeBuiltInPointingDevice:             func(p Parts) Structure { return &BuiltInPointingDevice{p} },
	TypePortableBattery:                   func(p Parts) Structure { return &PortableBattery{p} },
	TypeSystemReset:                       func(p Parts) Structure { return &SystemReset{p} },
	TypeHardwareSecurity:                  func(p Parts) Structure { return &HardwareSecurity{p} },
	TypeSystemPowerControls:               func(p Parts) Structure { return &SystemPowerControls{p} },
	TypeVoltageProbe:                      func(p Parts) Structure { return &VoltageProbe{probe{p}} },
	TypeCoolingDevice:                     func(p Parts) Structure { return &CoolingDevice{p} },
	TypeTemperatureProbe:                  func(p Parts) Structure { return &TemperatureProbe{probe{p}} },
	TypeElectricalCurrentProbe:            func(p Parts) Structure { return &ElectricalCurrentProbe{probe{p}} },
	TypeOutOfBandRemoteAccess:             func(p Parts) Structure { return &OutOfBandRemoteAccess{p} },
	TypeBISEntryPoint:                     func(p Parts) Structure { return &BISEntryPoint{p} },
	TypeSystemBoot:                        func(p Parts) Structure { return &SystemBootInformation{p} },
	TypeMemoryError64:                     func(p Parts) Structure { return &MemoryError64{p} },
	TypeManagementDevice:                  func(p Parts) Structure { return &ManagementDevice{p} },
	TypeManagementDeviceComponent:         func(p Parts) Structure { return &ManagementDeviceComponent{p} },
	TypeManagementDeviceThresholdData:     func(p Parts) Structure { return &ManagementDeviceThresholdData{p} },
	TypeMemoryChannel:                     func(p Parts) Structure { return &MemoryChannel{p} },
	TypeIPMIDevice:                        func(p Parts) Structure { return &IPMIDeviceInformation{p} },
	TypeSystemPowerSupply:                 func(p Parts) Structure { return &SystemPowerSupply{p} },
	TypeAdditionalInformation:             func(p Parts) Structure { return &AdditionalInformation{p} },
	TypeOnboardDevicesExtended:            func(p Parts) Structure { return &OnboardDevicesExtendedInformation{p} },
	TypeManagementControllerHostInterface: func(p Parts) Structure { return &ManagementControllerHostInterface{p} },
	TypeTPMDevice:                         func(p Parts) Structure { return &TPMDevice{p} },
	TypeProcessorAdditional:               func(p Parts) Structure { return &ProcessorAdditionalInformation{p} },
	TypeInactive:                          func(p Parts) Structure { return &Inactive{p} },
	TypeEndOfTable:                        func(p Parts) Structure { return &EndOfTable{p} },
}

// Dispatch wraps a span in the structure kind named by its type byte.
// Types without a typed decoding become *Unknown. version may be nil.
func Dispatch(s Span, version *Version) Structure {
	p := newParts(s, version)
	if c, ok := constructors[Type(s.Header.Type)]; ok {
		return c(p)
	}
	return &Unknown{p}
}
