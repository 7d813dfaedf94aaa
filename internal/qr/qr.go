// Package qr builds the scannable payload embedded in each appointment.
package qr

import (
	"encoding/base64"
	"fmt"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

const delimiter = ":"

// Payload is the string encoded into the appointment's QR image, used for
// at-venue verification: {id}:{date}:{time}:{serviceName}.
func Payload(id, date, timeOfDay, serviceName string) string {
	return strings.Join([]string{id, date, timeOfDay, serviceName}, delimiter)
}

// DecodePayload splits a payload back into its four parts. The service
// name may itself contain the delimiter, so only the first three splits
// are positional.
func DecodePayload(payload string) (id, date, timeOfDay, serviceName string, err error) {
	parts := strings.SplitN(payload, delimiter, 4)
	if len(parts) != 4 {
		return "", "", "", "", fmt.Errorf("qr: malformed payload %q", payload)
	}
	return parts[0], parts[1], parts[2], parts[3], nil
}

// DataURL renders the payload as a PNG data URL, ready to drop into an
// <img> tag.
func DataURL(payload string) (string, error) {
	png, err := qrcode.Encode(payload, qrcode.Medium, 256)
	if err != nil {
		return "", fmt.Errorf("qr: encode: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
