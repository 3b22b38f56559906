package handler

import (
	"context"
	"errors"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/rl1809/sku-pricing/internal/adapter/handler/pb"
	"github.com/rl1809/sku-pricing/internal/core/domain"
	"github.com/rl1809/sku-pricing/internal/core/service"
)

type GRPCHandler struct {
	pb.UnimplementedPricingServiceServer
	pricingService *service.PricingService
}

func NewGRPCHandler(pricingService *service.PricingService) *GRPCHandler {
	return &GRPCHandler{pricingService: pricingService}
}

func (h *GRPCHandler) SetPrice(ctx context.Context, req *pb.SetPriceRequest) (*pb.PriceRecord, error) {
	record, err := h.pricingService.SetPrice(ctx, service.SetPriceInput{
		SKU:        req.GetSku(),
		NetPrice:   req.GetNetPrice(),
		TaxCode:    req.GetVat(),
		Actor:      req.GetCreatedBy(),
		GrossPrice: req.GrossPrice,
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return toPriceRecord(record), nil
}

func (h *GRPCHandler) GetPrice(ctx context.Context, req *pb.GetPriceRequest) (*pb.PriceRecord, error) {
	record, err := h.pricingService.GetPrice(ctx, req.GetSku())
	if err != nil {
		return nil, toStatus(err)
	}
	return toPriceRecord(record), nil
}

func (h *GRPCHandler) GetPriceBulk(req *pb.GetPriceBulkRequest, stream grpc.ServerStreamingServer[pb.PriceRecord]) error {
	records, err := h.pricingService.GetPriceBulk(stream.Context(), req.GetSkuList())
	if err != nil {
		return toStatus(err)
	}

	for record := range records {
		if err := stream.Send(toPriceRecord(record)); err != nil {
			return err
		}
	}
	return nil
}

func (h *GRPCHandler) GetPriceHistory(req *pb.GetPriceHistoryRequest, stream grpc.ServerStreamingServer[pb.HistoryEntry]) error {
	history, err := h.pricingService.GetPriceHistory(stream.Context(), req.GetSku())
	if err != nil {
		return toStatus(err)
	}

	for entry := range history {
		if err := stream.Send(toHistoryEntry(entry)); err != nil {
			return err
		}
	}
	return nil
}

func (h *GRPCHandler) GetLatestPriceChanges(ctx context.Context, req *pb.GetLatestPriceChangesRequest) (*pb.SkuList, error) {
	skus, err := h.pricingService.GetLatestPriceChanges(ctx, req.GetDateFrom(), req.GetDateTill())
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.SkuList{Skus: skus}, nil
}

func toStatus(err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidTaxCode), errors.Is(err, service.ErrInvalidDateRange):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, service.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, service.ErrDownstreamNotificationFailed):
		return status.Error(codes.Unavailable, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

func toPriceRecord(p domain.SkuPrice) *pb.PriceRecord {
	return &pb.PriceRecord{
		Sku:        p.SKU,
		NetPrice:   p.NetPrice,
		Vat:        p.Tax.String(),
		GrossPrice: p.GrossPrice,
	}
}

func toHistoryEntry(h domain.HistoryEntry) *pb.HistoryEntry {
	return &pb.HistoryEntry{
		NetPrice:   h.NetPrice,
		Vat:        h.Tax.String(),
		GrossPrice: h.GrossPrice,
		CreatedBy:  h.CreatedBy,
		CreatedAt:  h.CreatedAt.Format(time.RFC3339Nano),
	}
}
