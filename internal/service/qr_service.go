package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"event_passport_backend/internal/model"

	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
)

const (
	qrImageSize = 256
	qrImageDir  = "qrcodes"
)

type QRService struct {
	Storage *StorageService
}

func NewQRService(storage *StorageService) *QRService {
	return &QRService{Storage: storage}
}

// RenderQRCode 二维码内容就是扫码令牌本身
func RenderQRCode(token string) ([]byte, error) {
	return qrcode.Encode(token, qrcode.Medium, qrImageSize)
}

func QRCodeDataURL(png []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
}

func qrImageName(token string) string {
	return qrImageDir + "/" + token + ".png"
}

// Publish 渲染并上传二维码图片，返回可访问的地址
func (s *QRService) Publish(ctx context.Context, token string) (string, error) {
	png, err := RenderQRCode(token)
	if err != nil {
		return "", err
	}
	return s.Storage.Upload(ctx, qrImageName(token), bytes.NewReader(png), int64(len(png)), "image/png")
}

// RenderPoster 生成 A4 展位海报：名称、简介、二维码
func RenderPoster(booth *model.Booth) ([]byte, error) {
	png, err := RenderQRCode(booth.QRCode)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 28)
	pdf.CellFormat(0, 16, tr(booth.Name), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 14)
	pdf.MultiCell(0, 8, tr(booth.Description), "", "C", false)
	pdf.Ln(10)

	qrSize := 110.0
	pdf.RegisterImageOptionsReader("qr", gofpdf.ImageOptions{ImageType: "png"}, bytes.NewReader(png))
	pdf.ImageOptions("qr", (210-qrSize)/2, pdf.GetY(), qrSize, qrSize, false, gofpdf.ImageOptions{ImageType: "png"}, 0, "")
	pdf.SetY(pdf.GetY() + qrSize + 8)

	pdf.SetFont("Helvetica", "I", 12)
	pdf.CellFormat(0, 8, "Scan to check in and collect your passport stamp", "", 1, "C", false, 0, "")
	if booth.HasQuestions {
		pdf.CellFormat(0, 8, tr("This booth has a short quiz"), "", 1, "C", false, 0, "")
	}

	pdf.SetDrawColor(200, 200, 200)
	pdf.Line(20, 282, 190, 282)
	pdf.SetY(284)
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 6, booth.QRCode, "", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
