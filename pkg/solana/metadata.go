package solana

import (
	"fmt"
	"strings"

	bin "github.com/gagliardetto/binary"
	solanago "github.com/gagliardetto/solana-go"
)

// TokenMetadataProgramID is the Metaplex token metadata program.
var TokenMetadataProgramID = solanago.MustPublicKeyFromBase58("metaqbxxUerdq28cj1RbAWkYQm3ybzjb6a8bt518x1s")

// OnChainMetadata is the prefix of a Metaplex metadata account we care about.
type OnChainMetadata struct {
	UpdateAuthority string
	Mint            string
	Name            string
	Symbol          string
	URI             string
}

type metadataAccount struct {
	Key             uint8
	UpdateAuthority solanago.PublicKey
	Mint            solanago.PublicKey
	Data            metadataData
}

type metadataData struct {
	Name                 string
	Symbol               string
	URI                  string
	SellerFeeBasisPoints uint16
}

// MetadataAddress derives the metadata PDA for a mint.
func MetadataAddress(mint solanago.PublicKey) (solanago.PublicKey, error) {
	addr, _, err := solanago.FindProgramAddress(
		[][]byte{
			[]byte("metadata"),
			TokenMetadataProgramID[:],
			mint[:],
		},
		TokenMetadataProgramID,
	)
	return addr, err
}

// DecodeMetadataAccount reads the borsh-encoded account data. Metaplex pads
// name, symbol and uri with NUL bytes up to fixed widths; they are trimmed.
func DecodeMetadataAccount(data []byte) (*OnChainMetadata, error) {
	var acc metadataAccount
	if err := bin.NewBorshDecoder(data).Decode(&acc); err != nil {
		return nil, fmt.Errorf("decode metadata account: %w", err)
	}
	return &OnChainMetadata{
		UpdateAuthority: acc.UpdateAuthority.String(),
		Mint:            acc.Mint.String(),
		Name:            trimPadding(acc.Data.Name),
		Symbol:          trimPadding(acc.Data.Symbol),
		URI:             trimPadding(acc.Data.URI),
	}, nil
}

func trimPadding(s string) string {
	return strings.TrimSpace(strings.TrimRight(s, "\x00"))
}
