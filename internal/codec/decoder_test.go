package codec

import (
	"bytes"
	"errors"
	"image"
	imgcolor "image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"golang.org/x/image/bmp"
)

func encodeTestPNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

func TestDecodeRGB_PNG(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.SetNRGBA(0, 0, imgcolor.NRGBA{R: 1, G: 2, B: 3, A: 255})
	img.SetNRGBA(2, 1, imgcolor.NRGBA{R: 200, G: 100, B: 50, A: 255})

	dec, err := DecodeRGB(encodeTestPNG(t, img))
	if err != nil {
		t.Fatalf("DecodeRGB: %v", err)
	}
	if dec.Width != 3 || dec.Height != 2 {
		t.Errorf("unexpected dimensions: %dx%d", dec.Width, dec.Height)
	}
	if len(dec.Pixels) != 3*2*3 {
		t.Fatalf("expected %d pixel bytes, got %d", 3*2*3, len(dec.Pixels))
	}
	if dec.Format != "png" {
		t.Errorf("format = %q, want png", dec.Format)
	}
	if got := dec.Pixels[0:3]; !bytes.Equal(got, []byte{1, 2, 3}) {
		t.Errorf("pixel (0,0) = %v", got)
	}
	if got := dec.Pixels[15:18]; !bytes.Equal(got, []byte{200, 100, 50}) {
		t.Errorf("pixel (2,1) = %v", got)
	}
}

func TestDecodeRGB_IgnoresAlpha(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.SetNRGBA(0, 0, imgcolor.NRGBA{R: 10, G: 20, B: 200, A: 64})

	dec, err := DecodeRGB(encodeTestPNG(t, img))
	if err != nil {
		t.Fatalf("DecodeRGB: %v", err)
	}
	if !bytes.Equal(dec.Pixels, []byte{10, 20, 200}) {
		t.Errorf("translucent pixel decoded as %v, want [10 20 200]", dec.Pixels)
	}
}

func TestDecodeRGB_NRGBA64LowAlpha(t *testing.T) {
	img := image.NewNRGBA64(image.Rect(0, 0, 2, 1))
	img.SetNRGBA64(0, 0, imgcolor.NRGBA64{R: 0, G: 0, B: 0x8000, A: 1})
	img.SetNRGBA64(1, 0, imgcolor.NRGBA64{R: 0x1234, G: 0xfedc, B: 0x00ff, A: 0xffff})

	dec, err := DecodeRGB(encodeTestPNG(t, img))
	if err != nil {
		t.Fatalf("DecodeRGB: %v", err)
	}
	want := []byte{0, 0, 0x80, 0x12, 0xfe, 0x00}
	if !bytes.Equal(dec.Pixels, want) {
		t.Errorf("16-bit pixels decoded as %v, want %v", dec.Pixels, want)
	}
}

func TestToRGB_NYCbCrA(t *testing.T) {
	img := image.NewNYCbCrA(image.Rect(0, 0, 2, 1), image.YCbCrSubsampleRatio444)
	yy, cb, cr := imgcolor.RGBToYCbCr(0, 0, 200)
	for i := range img.Y {
		img.Y[i] = yy
		img.Cb[i] = cb
		img.Cr[i] = cr
	}
	img.A[0] = 1
	img.A[1] = 0xff

	_, _, px := toRGB(img)
	r, g, b := imgcolor.YCbCrToRGB(yy, cb, cr)
	want := []byte{r, g, b, r, g, b}
	if !bytes.Equal(px, want) {
		t.Errorf("NYCbCrA decoded as %v, want %v", px, want)
	}
	if px[0] > 4 || px[2] < 190 {
		t.Errorf("low-alpha pixel lost its blue: %v", px[0:3])
	}
}

func TestDecodeRGB_Gray(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 2, 1))
	img.SetGray(0, 0, imgcolor.Gray{Y: 7})
	img.SetGray(1, 0, imgcolor.Gray{Y: 250})

	dec, err := DecodeRGB(encodeTestPNG(t, img))
	if err != nil {
		t.Fatalf("DecodeRGB: %v", err)
	}
	if !bytes.Equal(dec.Pixels, []byte{7, 7, 7, 250, 250, 250}) {
		t.Errorf("gray decoded as %v", dec.Pixels)
	}
}

func TestDecodeRGB_JPEG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 17, 9))
	for i := range img.Pix {
		img.Pix[i] = 0x80
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		t.Fatalf("jpeg.Encode: %v", err)
	}

	dec, err := DecodeRGB(buf.Bytes())
	if err != nil {
		t.Fatalf("DecodeRGB: %v", err)
	}
	if dec.Width != 17 || dec.Height != 9 {
		t.Errorf("unexpected dimensions: %dx%d", dec.Width, dec.Height)
	}
	if dec.Format != "jpeg" {
		t.Errorf("format = %q, want jpeg", dec.Format)
	}
	if len(dec.Pixels) != 17*9*3 {
		t.Errorf("expected %d pixel bytes, got %d", 17*9*3, len(dec.Pixels))
	}
}

func TestDecodeRGB_BMP(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(1, 1, imgcolor.RGBA{R: 0, G: 0, B: 255, A: 255})
	for _, p := range []image.Point{{0, 0}, {1, 0}, {0, 1}} {
		img.SetRGBA(p.X, p.Y, imgcolor.RGBA{A: 255})
	}
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, img); err != nil {
		t.Fatalf("bmp.Encode: %v", err)
	}

	dec, err := DecodeRGB(buf.Bytes())
	if err != nil {
		t.Fatalf("DecodeRGB: %v", err)
	}
	if dec.Format != "bmp" {
		t.Errorf("format = %q, want bmp", dec.Format)
	}
	if got := dec.Pixels[9:12]; !bytes.Equal(got, []byte{0, 0, 255}) {
		t.Errorf("pixel (1,1) = %v", got)
	}
}

func TestDecodeRGB_Invalid(t *testing.T) {
	for name, data := range map[string][]byte{
		"empty":     nil,
		"garbage":   []byte("definitely not an image"),
		"truncated": encodeTestPNG(t, image.NewRGBA(image.Rect(0, 0, 8, 8)))[:20],
	} {
		_, err := DecodeRGB(data)
		if err == nil {
			t.Errorf("[%s] expected error", name)
			continue
		}
		if !errors.Is(err, ErrDecode) {
			t.Errorf("[%s] error %v does not wrap ErrDecode", name, err)
		}
	}
}

func TestDecodeRGB_SubImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	img.SetNRGBA(2, 2, imgcolor.NRGBA{R: 9, G: 8, B: 7, A: 255})
	sub := img.SubImage(image.Rect(2, 2, 4, 4)).(*image.NRGBA)

	w, h, px := toRGB(sub)
	if w != 2 || h != 2 {
		t.Fatalf("unexpected dimensions: %dx%d", w, h)
	}
	if !bytes.Equal(px[0:3], []byte{9, 8, 7}) {
		t.Errorf("sub-image origin = %v", px[0:3])
	}
}

func TestGetInfo(t *testing.T) {
	data := encodeTestPNG(t, image.NewGray(image.Rect(0, 0, 5, 4)))
	info, err := GetInfo(data)
	if err != nil {
		t.Fatalf("GetInfo: %v", err)
	}
	if info.Width != 5 || info.Height != 4 {
		t.Errorf("unexpected dimensions: %dx%d", info.Width, info.Height)
	}
	if info.Format != "png" || info.ColorModel != "Grayscale" {
		t.Errorf("unexpected info: %+v", info)
	}

	if _, err := GetInfo([]byte("nope")); !errors.Is(err, ErrDecode) {
		t.Errorf("GetInfo on garbage: %v", err)
	}
}
