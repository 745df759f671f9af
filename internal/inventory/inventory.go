// Package inventory flattens a decoded structure table into a hardware
// summary: firmware, system identity, board, chassis, processors and
// memory.
package inventory

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/zenithax-cc/dmidecode/pkg/smbios"
	"github.com/zenithax-cc/dmidecode/pkg/utils"
)

const (
	unknownValue = "Unknown"
	maxWorkers   = 3
)

var ErrSectionNotFound = errors.New("inventory: section not found")

type section struct {
	name    string
	collect func(c *smbios.Collection) error
}

// Collect fills every section it can. Sections whose structures are
// missing are reported together in the returned error; the inventory is
// returned either way.
func Collect(ctx context.Context, c *smbios.Collection) (*Inventory, error) {
	inv := &Inventory{}
	sections := []section{
		{"bios", inv.collectBIOS},
		{"system", inv.collectSystem},
		{"baseboard", inv.collectBaseBoard},
		{"chassis", inv.collectChassis},
		{"processor", inv.collectProcessors},
		{"memory", inv.collectMemory},
	}

	var (
		mu   sync.Mutex
		errs []error
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxWorkers)
	for _, s := range sections {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := s.collect(c); err != nil {
				log.Warn().Err(err).Str("section", s.name).Msg("incomplete inventory")
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return inv, err
	}

	return inv, utils.CombineErrors(errs)
}

func notFound(t smbios.Type) error {
	return fmt.Errorf("%w: %s", ErrSectionNotFound, t)
}

func (inv *Inventory) collectBIOS(c *smbios.Collection) error {
	entry, ok := smbios.First[*smbios.BIOSInformation](c)
	if !ok {
		return notFound(smbios.TypeBIOS)
	}

	var raw struct {
		Vendor      string
		Version     string
		Segment     uint16
		ReleaseDate string
		ROMSize     uint8
		Chars       uint64
		CharsExt    uint16
		BIOSMajor   uint8 `smbios:"default=0xFF"`
		BIOSMinor   uint8 `smbios:"default=0xFF"`
		ECMajor     uint8 `smbios:"default=0xFF"`
		ECMinor     uint8 `smbios:"default=0xFF"`
	}
	if err := smbios.Unmarshal(entry, &raw); err != nil {
		return fmt.Errorf("bios: %w", err)
	}

	inv.BIOS = BIOS{
		Vendor:           raw.Vendor,
		Version:          raw.Version,
		ReleaseDate:      raw.ReleaseDate,
		BIOSRevision:     formatRevision(raw.BIOSMajor, raw.BIOSMinor),
		FirmwareRevision: formatRevision(raw.ECMajor, raw.ECMinor),
	}
	if size, ok := entry.ROMSizeBytes().Get(); ok {
		inv.BIOS.ROMSize = smbios.FormatSize(size)
	}
	return nil
}

// formatRevision renders major.minor; 0xFF means the revision is not
// supported.
func formatRevision(major, minor uint8) string {
	if major == 0xFF || minor == 0xFF {
		return ""
	}
	return fmt.Sprintf("%d.%d", major, minor)
}

func (inv *Inventory) collectSystem(c *smbios.Collection) error {
	entry, ok := smbios.First[*smbios.SystemInformation](c)
	if !ok {
		return notFound(smbios.TypeSystem)
	}

	inv.System = System{
		Manufacturer: text(entry.Manufacturer()),
		ProductName:  text(entry.ProductName()),
		Version:      text(entry.SystemVersion()),
		SerialNumber: text(entry.SerialNumber()),
		WakeupType:   stringer(entry.WakeUpType()),
		SKUNumber:    text(entry.SKUNumber()),
		Family:       text(entry.Family()),
	}

	if state, ok := entry.UUIDState().Get(); ok {
		if state == smbios.UUIDPresent {
			inv.System.UUID = stringer(entry.UUID())
		} else {
			inv.System.UUID = state.String()
		}
	}
	return nil
}

func (inv *Inventory) collectBaseBoard(c *smbios.Collection) error {
	entry, ok := smbios.First[*smbios.BaseboardInformation](c)
	if !ok {
		return notFound(smbios.TypeBaseBoard)
	}

	inv.BaseBoard = BaseBoard{
		Manufacturer: text(entry.Manufacturer()),
		ProductName:  text(entry.Product()),
		Version:      text(entry.BoardVersion()),
		SerialNumber: text(entry.SerialNumber()),
		AssetTag:     text(entry.AssetTag()),
		Type:         stringer(entry.BoardType()),
	}
	// Some vendors leave the board manufacturer empty.
	if sys, ok := smbios.First[*smbios.SystemInformation](c); ok {
		utils.FillField(text(sys.Manufacturer()), &inv.BaseBoard.Manufacturer)
	}
	return nil
}

func (inv *Inventory) collectChassis(c *smbios.Collection) error {
	entry, ok := smbios.First[*smbios.ChassisInformation](c)
	if !ok {
		return notFound(smbios.TypeChassis)
	}

	inv.Chassis = Chassis{
		Manufacturer:     text(entry.Manufacturer()),
		Type:             stringer(entry.ChassisType()),
		Version:          text(entry.ChassisVersion()),
		SerialNumber:     text(entry.SerialNumber()),
		AssetTag:         text(entry.AssetTag()),
		BootupState:      stringer(entry.BootUpState()),
		PowerSupplyState: stringer(entry.PowerSupplyState()),
		ThermalState:     stringer(entry.ThermalState()),
		SecurityStatus:   stringer(entry.SecurityStatus()),
		SKU:              text(entry.SKUNumber()),
	}
	if h, ok := entry.Height().Get(); ok && h != 0 {
		inv.Chassis.Height = fmt.Sprintf("%d U", h)
	}
	if n, ok := entry.NumberOfPowerCords().Get(); ok && n != 0 {
		inv.Chassis.NumberOfPower = strconv.Itoa(int(n))
	}
	return nil
}

func (inv *Inventory) collectProcessors(c *smbios.Collection) error {
	cpus := smbios.Find[*smbios.ProcessorInformation](c)
	if len(cpus) == 0 {
		return notFound(smbios.TypeProcessor)
	}

	for _, cpu := range cpus {
		status, ok := cpu.Status().Get()
		if ok && !status.Populated() {
			continue
		}

		p := &Processor{
			SocketDesignation: text(cpu.SocketDesignation()),
			ProcessorType:     stringer(cpu.ProcessorType()),
			Family:            stringer(cpu.EffectiveFamily()),
			Manufacturer:      text(cpu.Manufacturer()),
			Version:           text(cpu.ProcessorVersion()),
			Socket:            text(cpu.SocketType()),
			ExternalClock:     formatMHz(cpu.ExternalClock()),
			MaxSpeed:          formatMHz(cpu.MaxSpeed()),
			CurrentSpeed:      formatMHz(cpu.CurrentSpeed()),
			Status:            stringer(cpu.Status()),
			CoreCount:         count(cpu.EffectiveCoreCount()),
			CoreEnabled:       count(cpu.EffectiveCoreEnabled()),
			ThreadCount:       count(cpu.EffectiveThreadCount()),
		}
		if v, ok := cpu.VoltageVolts().Get(); ok && v != 0 {
			p.Voltage = fmt.Sprintf("%.1f V", v)
		}
		if chars, ok := cpu.Characteristics().Get(); ok {
			p.Characteristics = chars.Flags()
		}
		inv.Processors = append(inv.Processors, p)
	}
	return nil
}

func (inv *Inventory) collectMemory(c *smbios.Collection) error {
	devices := smbios.Find[*smbios.MemoryDevice](c)
	if len(devices) == 0 {
		return notFound(smbios.TypeMemoryDevice)
	}

	var (
		slots    int
		capacity uint64
	)
	for _, array := range smbios.Find[*smbios.PhysicalMemoryArray](c) {
		// Only arrays used as system memory hold DIMMs.
		if use := array.Use().Or(0); use != 0x03 {
			continue
		}
		slots += int(array.NumberOfMemoryDevices().Or(0))
		capacity += array.MaximumCapacityBytes().Or(0)
		if inv.Memory.ErrorCorrection == "" {
			inv.Memory.ErrorCorrection = stringer(array.MemoryErrorCorrection())
		}
	}
	if slots == 0 {
		slots = len(devices)
	}

	var total uint64
	for _, d := range devices {
		size, ok := d.SizeBytes().Get()
		if !ok {
			continue
		}
		total += size
		inv.Memory.Entries = append(inv.Memory.Entries, &MemoryEntry{
			DeviceLocator:     text(d.DeviceLocator()),
			BankLocator:       text(d.BankLocator()),
			Size:              smbios.FormatSize(size),
			Manufacturer:      text(d.Manufacturer()),
			SerialNumber:      text(d.SerialNumber()),
			PartNumber:        text(d.PartNumber()),
			Type:              stringer(d.MemoryType()),
			TypeDetail:        stringer(d.TypeDetail()),
			FormFactor:        stringer(d.FormFactor()),
			TotalWidth:        bitWidth(d.TotalWidth()),
			DataWidth:         bitWidth(d.DataWidth()),
			Speed:             speed(d.SpeedMTs()),
			ConfiguredSpeed:   speed(d.ConfiguredSpeedMTs()),
			ConfiguredVoltage: voltage(d.ConfiguredVoltage()),
			Rank:              rank(d.Rank()),
			Technology:        stringer(d.MemoryTechnology()),
		})
	}

	inv.Memory.MaxSlots = strconv.Itoa(slots)
	inv.Memory.UsedSlots = strconv.Itoa(len(inv.Memory.Entries))
	inv.Memory.PhysicalMemorySize = smbios.FormatSize(total)
	if capacity != 0 {
		inv.Memory.MaxCapacity = smbios.FormatSize(capacity)
	}
	return nil
}
