package dataset

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

const (
	EncodingAuto    = "auto"
	EncodingUTF8    = "utf-8"
	EncodingUTF8BOM = "utf-8-sig"
	EncodingLatin1  = "latin1"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// normalizeEncodingName aceita as grafias mais comuns de cada codificação
func normalizeEncodingName(name string) string {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", EncodingAuto:
		return EncodingAuto
	case "utf-8", "utf8":
		return EncodingUTF8
	case "utf-8-sig", "utf8-sig", "utf-8-bom":
		return EncodingUTF8BOM
	case "latin1", "latin-1", "iso-8859-1", "iso8859-1":
		return EncodingLatin1
	}
	return ""
}

// Decode converte o conteúdo bruto para UTF-8, retornando a codificação efetivamente usada.
// Em modo automático: BOM indica utf-8-sig, UTF-8 válido é mantido e o restante é lido como latin1.
func Decode(data []byte, encoding string) ([]byte, string, error) {
	enc := normalizeEncodingName(encoding)

	switch enc {
	case EncodingAuto:
		if bytes.HasPrefix(data, utf8BOM) {
			return decodeUTF8BOM(data)
		}
		if utf8.Valid(data) {
			return data, EncodingUTF8, nil
		}
		return decodeLatin1(data)

	case EncodingUTF8BOM:
		return decodeUTF8BOM(data)

	case EncodingUTF8:
		if !utf8.Valid(data) {
			return nil, "", errors.Wrap(ErrUnrecognizedEncoding, "conteúdo não é UTF-8 válido")
		}
		return data, EncodingUTF8, nil

	case EncodingLatin1:
		return decodeLatin1(data)
	}

	return nil, "", errors.Wrapf(ErrUnrecognizedEncoding, "codificação %q não suportada", encoding)
}

func decodeUTF8BOM(data []byte) ([]byte, string, error) {
	out, err := unicode.UTF8BOM.NewDecoder().Bytes(data)
	if err != nil {
		return nil, "", errors.Wrap(ErrUnrecognizedEncoding, err.Error())
	}
	if !utf8.Valid(out) {
		return nil, "", errors.Wrap(ErrUnrecognizedEncoding, "conteúdo após BOM não é UTF-8 válido")
	}
	return out, EncodingUTF8BOM, nil
}

func decodeLatin1(data []byte) ([]byte, string, error) {
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return nil, "", errors.Wrap(ErrUnrecognizedEncoding, err.Error())
	}
	return out, EncodingLatin1, nil
}
