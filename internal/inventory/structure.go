package inventory

type BIOS struct {
	Vendor           string `json:"vendor,omitempty" yaml:"vendor,omitempty" name:"Vendor" color:"DefaultGreen"`
	Version          string `json:"version,omitempty" yaml:"version,omitempty" name:"Version"`
	ReleaseDate      string `json:"release_date,omitempty" yaml:"release_date,omitempty" name:"Release Date"`
	ROMSize          string `json:"rom_size,omitempty" yaml:"rom_size,omitempty" name:"ROM Size"`
	BIOSRevision     string `json:"bios_revision,omitempty" yaml:"bios_revision,omitempty" name:"BIOS Revision"`
	FirmwareRevision string `json:"firmware_revision,omitempty" yaml:"firmware_revision,omitempty" name:"Firmware Revision"`
}

type System struct {
	Manufacturer string `json:"manufacturer,omitempty" yaml:"manufacturer,omitempty" name:"Manufacturer" color:"DefaultGreen"`
	ProductName  string `json:"product_name,omitempty" yaml:"product_name,omitempty" name:"Product Name" color:"DefaultGreen"`
	Version      string `json:"version,omitempty" yaml:"version,omitempty" name:"Version"`
	SerialNumber string `json:"serial_number,omitempty" yaml:"serial_number,omitempty" name:"SN" color:"DefaultGreen"`
	UUID         string `json:"uuid,omitempty" yaml:"uuid,omitempty" name:"UUID"`
	WakeupType   string `json:"wake-up_type,omitempty" yaml:"wake-up_type,omitempty" name:"Wake-up Type"`
	SKUNumber    string `json:"sku_number,omitempty" yaml:"sku_number,omitempty" name:"SKU Number"`
	Family       string `json:"family,omitempty" yaml:"family,omitempty" name:"Family"`
}

type BaseBoard struct {
	Manufacturer string `json:"manufacturer,omitempty" yaml:"manufacturer,omitempty" name:"Manufacturer"`
	ProductName  string `json:"product_name,omitempty" yaml:"product_name,omitempty" name:"Product Name"`
	Version      string `json:"version,omitempty" yaml:"version,omitempty" name:"Version"`
	SerialNumber string `json:"serial_number,omitempty" yaml:"serial_number,omitempty" name:"SN"`
	AssetTag     string `json:"asset_tag,omitempty" yaml:"asset_tag,omitempty" name:"Asset Tag"`
	Type         string `json:"type,omitempty" yaml:"type,omitempty" name:"Type"`
}

type Chassis struct {
	Manufacturer     string `json:"manufacturer,omitempty" yaml:"manufacturer,omitempty" name:"Manufacturer"`
	Type             string `json:"type,omitempty" yaml:"type,omitempty" name:"Type"`
	Version          string `json:"version,omitempty" yaml:"version,omitempty" name:"Version"`
	SerialNumber     string `json:"serial_number,omitempty" yaml:"serial_number,omitempty" name:"SN"`
	AssetTag         string `json:"asset_tag,omitempty" yaml:"asset_tag,omitempty" name:"Asset Tag" color:"DefaultGreen"`
	BootupState      string `json:"bootup_state,omitempty" yaml:"bootup_state,omitempty" name:"Boot-up State"`
	PowerSupplyState string `json:"power_supply_state,omitempty" yaml:"power_supply_state,omitempty" name:"Power Supply State"`
	ThermalState     string `json:"thermal_state,omitempty" yaml:"thermal_state,omitempty" name:"Thermal State"`
	SecurityStatus   string `json:"security_status,omitempty" yaml:"security_status,omitempty" name:"Security Status"`
	Height           string `json:"height,omitempty" yaml:"height,omitempty" name:"Height"`
	NumberOfPower    string `json:"number_of_power_cords,omitempty" yaml:"number_of_power_cords,omitempty" name:"Power Cords"`
	SKU              string `json:"sku_number,omitempty" yaml:"sku_number,omitempty" name:"SKU Number"`
}

type Processor struct {
	SocketDesignation string   `json:"socket_designation,omitempty" yaml:"socket_designation,omitempty" name:"Socket Designation"`
	ProcessorType     string   `json:"processor_type,omitempty" yaml:"processor_type,omitempty" name:"Type"`
	Family            string   `json:"family,omitempty" yaml:"family,omitempty" name:"Family"`
	Manufacturer      string   `json:"manufacturer,omitempty" yaml:"manufacturer,omitempty" name:"Manufacturer"`
	Version           string   `json:"version,omitempty" yaml:"version,omitempty" name:"Version" color:"DefaultGreen"`
	Socket            string   `json:"socket,omitempty" yaml:"socket,omitempty" name:"Socket"`
	ExternalClock     string   `json:"external_clock,omitempty" yaml:"external_clock,omitempty" name:"External Clock"`
	MaxSpeed          string   `json:"max_speed,omitempty" yaml:"max_speed,omitempty" name:"Max Speed"`
	CurrentSpeed      string   `json:"current_speed,omitempty" yaml:"current_speed,omitempty" name:"Current Speed"`
	Status            string   `json:"status,omitempty" yaml:"status,omitempty" name:"Status"`
	Voltage           string   `json:"voltage,omitempty" yaml:"voltage,omitempty" name:"Voltage"`
	CoreCount         string   `json:"core_count,omitempty" yaml:"core_count,omitempty" name:"Core Count"`
	CoreEnabled       string   `json:"core_enabled,omitempty" yaml:"core_enabled,omitempty" name:"Core Enabled"`
	ThreadCount       string   `json:"threads_count,omitempty" yaml:"threads_count,omitempty" name:"Thread Count"`
	Characteristics   []string `json:"characteristics,omitempty" yaml:"characteristics,omitempty" name:"Characteristics"`
}

type Memory struct {
	PhysicalMemorySize string         `json:"physical_memory_size,omitempty" yaml:"physical_memory_size,omitempty" name:"Physical Memory" color:"DefaultGreen"`
	MaxCapacity        string         `json:"max_capacity,omitempty" yaml:"max_capacity,omitempty" name:"Max Capacity"`
	MaxSlots           string         `json:"max_slots,omitempty" yaml:"max_slots,omitempty" name:"Slot Max"`
	UsedSlots          string         `json:"used_slots,omitempty" yaml:"used_slots,omitempty" name:"Slot Used"`
	ErrorCorrection    string         `json:"error_correction,omitempty" yaml:"error_correction,omitempty" name:"Error Correction"`
	Entries            []*MemoryEntry `json:"entries,omitempty" yaml:"entries,omitempty" name:"Memory Devices"`
}

type MemoryEntry struct {
	DeviceLocator     string `json:"device_locator,omitempty" yaml:"device_locator,omitempty" name:"Locator"`
	BankLocator       string `json:"bank_locator,omitempty" yaml:"bank_locator,omitempty" name:"Bank Locator"`
	Size              string `json:"size,omitempty" yaml:"size,omitempty" name:"Size" color:"DefaultGreen"`
	Manufacturer      string `json:"manufacturer,omitempty" yaml:"manufacturer,omitempty" name:"Manufacturer"`
	SerialNumber      string `json:"serial_number,omitempty" yaml:"serial_number,omitempty" name:"SN"`
	PartNumber        string `json:"part_number,omitempty" yaml:"part_number,omitempty" name:"Part Number"`
	Type              string `json:"type,omitempty" yaml:"type,omitempty" name:"Type"`
	TypeDetail        string `json:"type_detail,omitempty" yaml:"type_detail,omitempty" name:"Type Detail"`
	FormFactor        string `json:"form_factor,omitempty" yaml:"form_factor,omitempty" name:"Form Factor"`
	TotalWidth        string `json:"total_width,omitempty" yaml:"total_width,omitempty" name:"Total Width"`
	DataWidth         string `json:"data_width,omitempty" yaml:"data_width,omitempty" name:"Data Width"`
	Speed             string `json:"speed,omitempty" yaml:"speed,omitempty" name:"Speed"`
	ConfiguredSpeed   string `json:"configured_speed,omitempty" yaml:"configured_speed,omitempty" name:"Configured Speed"`
	ConfiguredVoltage string `json:"configured_voltage,omitempty" yaml:"configured_voltage,omitempty" name:"Configured Voltage"`
	Rank              string `json:"rank,omitempty" yaml:"rank,omitempty" name:"Rank"`
	Technology        string `json:"technology,omitempty" yaml:"technology,omitempty" name:"Technology"`
}

// Inventory is a flattened hardware summary of one structure table.
type Inventory struct {
	BIOS       BIOS         `json:"bios" yaml:"bios" name:"BIOS"`
	System     System       `json:"system" yaml:"system" name:"System"`
	BaseBoard  BaseBoard    `json:"base_board" yaml:"base_board" name:"Baseboard"`
	Chassis    Chassis      `json:"chassis" yaml:"chassis" name:"Chassis"`
	Processors []*Processor `json:"processors,omitempty" yaml:"processors,omitempty" name:"Processors"`
	Memory     Memory       `json:"memory" yaml:"memory" name:"Memory"`
}
