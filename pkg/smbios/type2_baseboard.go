package smbios

// BaseboardInformation is SMBIOS type 2.
type BaseboardInformation struct {
	Parts
}

func (b *BaseboardInformation) Manufacturer() Field[Text] { return b.StringAt(0x04) }
func (b *BaseboardInformation) Product() Field[Text] { return b.StringAt(0x05) }
func (b *BaseboardInformation) BoardVersion() Field[Text] { return b.StringAt(0x06) }
func (b *BaseboardInformation) SerialNumber() Field[Text] { return b.StringAt(0x07) }
func (b *BaseboardInformation) AssetTag() Field[Text] { return b.StringAt(0x08) }

func (b *BaseboardInformation) FeatureFlags() Field[BoardFeatures] {
	return cast[BoardFeatures](b.ByteAt(0x09))
}

func (b *BaseboardInformation) LocationInChassis() Field[Text] { return b.StringAt(0x0A) }
func (b *BaseboardInformation) ChassisHandle() Field[Handle] { return b.HandleAt(0x0B) }
func (b *BaseboardInformation) BoardType() Field[BoardType] { return cast[BoardType](b.ByteAt(0x0D)) }

// ContainedObjectHandles lists the structures that sit on this board.
func (b *BaseboardInformation) ContainedObjectHandles() Field[[]Handle] { return b.handles(0x0E) }

type BoardFeatures uint8

const (
	BoardFeatureHostingBoard BoardFeatures = 1 << iota
	BoardFeatureRequiresDaughterBoard
	BoardFeatureRemovable
	BoardFeatureReplaceable
	BoardFeatureHotSwappable
)

var boardFeatureNames = []string{
	"Board is a hosting board",
	"Board requires at least one daughter board",
	"Board is removable",
	"Board is replaceable",
	"Board is hot swappable",
}

func (f BoardFeatures) Flags() []string { return flagNames(f, boardFeatureNames) }
func (f BoardFeatures) String() string { return joinFlags(f, boardFeatureNames) }

type BoardType uint8

const (
	BoardTypeUnknown BoardType = iota + 1
	BoardTypeOther
	BoardTypeServerBlade
	BoardTypeConnectivitySwitch
	BoardTypeSystemManagementModule
	BoardTypeProcessorModule
	BoardTypeIOModule
	BoardTypeMemoryModule
	BoardTypeDaughterBoard
	BoardTypeMotherboard
	BoardTypeProcessorMemoryModule
	BoardTypeProcessorIOModule
	BoardTypeInterconnectBoard
)

var boardTypeNames = map[BoardType]string{
	BoardTypeUnknown:                "Unknown",
	BoardTypeOther:                  "Other",
	BoardTypeServerBlade:            "Server Blade",
	BoardTypeConnectivitySwitch:     "Connectivity Switch",
	BoardTypeSystemManagementModule: "System Management Module",
	BoardTypeProcessorModule:        "Processor Module",
	BoardTypeIOModule:               "I/O Module",
	BoardTypeMemoryModule:           "Memory Module",
	BoardTypeDaughterBoard:          "Daughter Board",
	BoardTypeMotherboard:            "Motherboard",
	BoardTypeProcessorMemoryModule:  "Processor+Memory Module",
	BoardTypeProcessorIOModule:      "Processor+I/O Module",
	BoardTypeInterconnectBoard:      "Interconnect Board",
}

func (t BoardType) String() string { return enumName(t, boardTypeNames) }
