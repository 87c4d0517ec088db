package grpc

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc/status"

	"github.com/exemplar/itemsvc/internal/db"
	"github.com/exemplar/itemsvc/internal/models"
	"github.com/exemplar/itemsvc/internal/pagination"
	"github.com/exemplar/itemsvc/internal/service"
	"github.com/exemplar/itemsvc/internal/serviceerr"
	pb "github.com/exemplar/itemsvc/proto/item/v1"
)

// Server exposes the item service over gRPC. It mirrors the REST surface:
// the same service layer handles both, so validation and error semantics
// stay identical across transports.
type Server struct {
	pb.UnimplementedItemServiceServer
	svc *service.Service
}

func NewServer(svc *service.Service) *Server {
	return &Server{svc: svc}
}

func (s *Server) CreateItem(ctx context.Context, req *pb.CreateItemRequest) (*pb.CreateItemResponse, error) {
	params := service.CreateItemParams{
		Name:        req.Name,
		Description: req.Description,
	}
	if req.Status != "" {
		st, err := models.ParseItemStatus(req.Status)
		if err != nil {
			return nil, statusError(serviceerr.InvalidRequest(err.Error()))
		}
		params.Status = st
	}

	item, err := s.svc.Create(ctx, params)
	if err != nil {
		return nil, statusError(err)
	}
	return &pb.CreateItemResponse{Item: itemToProto(item)}, nil
}

func (s *Server) GetItem(ctx context.Context, req *pb.GetItemRequest) (*pb.GetItemResponse, error) {
	item, err := s.svc.Get(ctx, req.Id)
	if err != nil {
		return nil, statusError(err)
	}
	return &pb.GetItemResponse{Item: itemToProto(item)}, nil
}

func (s *Server) ListItems(ctx context.Context, req *pb.ListItemsRequest) (*pb.ListItemsResponse, error) {
	params := service.ListItemsParams{
		Page: pagination.PageRequest{
			Page: int(req.StartPage),
			Size: int(req.PageSize),
		},
	}
	if req.PageSize == 0 {
		params.Page.Size = pagination.DefaultPageSize
	}
	if req.Status != "" {
		st, err := models.ParseItemStatus(req.Status)
		if err != nil {
			return nil, statusError(serviceerr.InvalidRequest(err.Error()))
		}
		params.Status = &st
	}
	if req.Search != "" {
		params.Search = &req.Search
	}

	page, err := s.svc.List(ctx, params)
	if err != nil {
		return nil, statusError(err)
	}

	items := make([]*pb.Item, 0, len(page.Items))
	for _, item := range page.Items {
		items = append(items, itemToProto(item))
	}
	return &pb.ListItemsResponse{
		Items:         items,
		TotalElements: int32(page.TotalElements),
		TotalPages:    int32(page.TotalPages),
		CurrentPage:   int32(page.CurrentPage),
		PageSize:      int32(page.PageSize),
		HasNext:       page.HasNext,
		HasPrevious:   page.HasPrevious,
		NextPage:      int32(page.NextPage),
		PreviousPage:  int32(page.PreviousPage),
	}, nil
}

func (s *Server) UpdateItem(ctx context.Context, req *pb.UpdateItemRequest) (*pb.UpdateItemResponse, error) {
	var update db.ItemUpdate
	if req.Name != nil {
		update.Name = db.Some(*req.Name)
	}
	if req.ClearDescription {
		update.Description = db.Some[*string](nil)
	} else if req.Description != nil {
		update.Description = db.Some(req.Description)
	}
	if req.Status != nil {
		st, err := models.ParseItemStatus(*req.Status)
		if err != nil {
			return nil, statusError(serviceerr.InvalidRequest(err.Error()))
		}
		update.Status = db.Some(st)
	}

	item, err := s.svc.Update(ctx, req.Id, req.ExpectedVersion, update)
	if err != nil {
		return nil, statusError(err)
	}
	return &pb.UpdateItemResponse{Item: itemToProto(item)}, nil
}

func (s *Server) DeleteItem(ctx context.Context, req *pb.DeleteItemRequest) (*pb.DeleteItemResponse, error) {
	if err := s.svc.Delete(ctx, req.Id); err != nil {
		return nil, statusError(err)
	}
	return &pb.DeleteItemResponse{Deleted: true}, nil
}

func itemToProto(item *models.Item) *pb.Item {
	return &pb.Item{
		Id:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Status:      string(item.Status),
		CreatedAt:   item.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   item.UpdatedAt.Format(time.RFC3339),
		Version:     item.Version,
	}
}

// statusError converts service errors into gRPC status errors. Internal
// failures are logged and replaced with the generic message so backend
// details never reach the client.
func statusError(err error) error {
	se := serviceerr.From(err)
	code := serviceerr.GRPCCode(se.Code)
	msg := se.Message
	if serviceerr.HTTPStatus(se.Code) >= 500 {
		slog.Error("grpc request failed", "code", se.Code, "error", err)
		msg = serviceerr.DefaultMessage(se.Code)
	}
	return status.Error(code, msg)
}
