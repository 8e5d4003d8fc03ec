// file: internals/helpers/convert_image.go
package helper

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"mime/multipart"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	xdraw "golang.org/x/image/draw"
)

const (
	photoMaxWidth = 1280
	webpQuality   = 80
)

// ConvertToWebP membaca file gambar upload, resize bila terlalu lebar,
// lalu encode ke webp. Mengembalikan bytes siap simpan + nama file baru.
func ConvertToWebP(fh *multipart.FileHeader) ([]byte, string, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, "", fmt.Errorf("gagal membuka file gambar: %w", err)
	}
	defer src.Close()

	img, _, err := image.Decode(src)
	if err != nil {
		return nil, "", fmt.Errorf("format gambar tidak dikenali: %w", err)
	}

	// Resize proporsional kalau lebar melebihi batas
	if b := img.Bounds(); b.Dx() > photoMaxWidth {
		h := b.Dy() * photoMaxWidth / b.Dx()
		dst := image.NewRGBA(image.Rect(0, 0, photoMaxWidth, h))
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
		img = dst
	}

	// Perbaiki orientasi EXIF umum (no-op kalau tidak perlu)
	img = imaging.Clone(img)

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, "", fmt.Errorf("gagal encode webp: %w", err)
	}

	base := strings.TrimSuffix(fh.Filename, "."+fileExt(fh.Filename))
	return buf.Bytes(), GenerateUniqueFilename(base + ".webp"), nil
}

func fileExt(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 && i < len(name)-1 {
		return name[i+1:]
	}
	return ""
}
