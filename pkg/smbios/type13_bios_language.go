package smbios

// BIOSLanguageInformation is SMBIOS type 13.
type BIOSLanguageInformation struct {
	Parts
}

func (b *BIOSLanguageInformation) InstallableLanguages() Field[uint8] { return b.ByteAt(0x04) }

// Flags bit 0 set means abbreviated language names (2.1+).
func (b *BIOSLanguageInformation) Flags() Field[uint8] { return b.ByteAt(0x05) }
func (b *BIOSLanguageInformation) CurrentLanguage() Field[Text] { return b.StringAt(0x15) }
func (b *BIOSLanguageInformation) Languages() Field[[]string] { return countedStrings(b.Parts) }
