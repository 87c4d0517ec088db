// Hand-maintained Go types for proto/item/v1/item.proto, kept in the
// legacy message form (Reset/String/ProtoMessage plus protobuf struct
// tags) so they marshal through the protobuf v1 adapter without a
// generation step. Field numbers must stay in sync with item.proto.
package itemv1

import "fmt"

type Item struct {
	Id          string  `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name        string  `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Description *string `protobuf:"bytes,3,opt,name=description" json:"description,omitempty"`
	Status      string  `protobuf:"bytes,4,opt,name=status,proto3" json:"status,omitempty"`
	CreatedAt   string  `protobuf:"bytes,5,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt   string  `protobuf:"bytes,6,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	Version     int64   `protobuf:"varint,7,opt,name=version,proto3" json:"version,omitempty"`
}

func (m *Item) Reset()         { *m = Item{} }
func (m *Item) String() string { return fmt.Sprintf("%+v", *m) }
func (*Item) ProtoMessage()    {}

func (m *Item) GetId() string {
	if m != nil {
		return m.Id
	}
	return ""
}

func (m *Item) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

func (m *Item) GetDescription() string {
	if m != nil && m.Description != nil {
		return *m.Description
	}
	return ""
}

func (m *Item) GetStatus() string {
	if m != nil {
		return m.Status
	}
	return ""
}

func (m *Item) GetCreatedAt() string {
	if m != nil {
		return m.CreatedAt
	}
	return ""
}

func (m *Item) GetUpdatedAt() string {
	if m != nil {
		return m.UpdatedAt
	}
	return ""
}

func (m *Item) GetVersion() int64 {
	if m != nil {
		return m.Version
	}
	return 0
}

type CreateItemRequest struct {
	Name        string  `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Description *string `protobuf:"bytes,2,opt,name=description" json:"description,omitempty"`
	Status      string  `protobuf:"bytes,3,opt,name=status,proto3" json:"status,omitempty"`
}

func (m *CreateItemRequest) Reset()         { *m = CreateItemRequest{} }
func (m *CreateItemRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*CreateItemRequest) ProtoMessage()    {}

func (m *CreateItemRequest) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

func (m *CreateItemRequest) GetDescription() string {
	if m != nil && m.Description != nil {
		return *m.Description
	}
	return ""
}

func (m *CreateItemRequest) GetStatus() string {
	if m != nil {
		return m.Status
	}
	return ""
}

type CreateItemResponse struct {
	Item *Item `protobuf:"bytes,1,opt,name=item,proto3" json:"item,omitempty"`
}

func (m *CreateItemResponse) Reset()         { *m = CreateItemResponse{} }
func (m *CreateItemResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*CreateItemResponse) ProtoMessage()    {}

func (m *CreateItemResponse) GetItem() *Item {
	if m != nil {
		return m.Item
	}
	return nil
}

type GetItemRequest struct {
	Id string `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
}

func (m *GetItemRequest) Reset()         { *m = GetItemRequest{} }
func (m *GetItemRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetItemRequest) ProtoMessage()    {}

func (m *GetItemRequest) GetId() string {
	if m != nil {
		return m.Id
	}
	return ""
}

type GetItemResponse struct {
	Item *Item `protobuf:"bytes,1,opt,name=item,proto3" json:"item,omitempty"`
}

func (m *GetItemResponse) Reset()         { *m = GetItemResponse{} }
func (m *GetItemResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetItemResponse) ProtoMessage()    {}

func (m *GetItemResponse) GetItem() *Item {
	if m != nil {
		return m.Item
	}
	return nil
}

type ListItemsRequest struct {
	StartPage int32  `protobuf:"varint,1,opt,name=start_page,json=startPage,proto3" json:"start_page,omitempty"`
	PageSize  int32  `protobuf:"varint,2,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	Status    string `protobuf:"bytes,3,opt,name=status,proto3" json:"status,omitempty"`
	Search    string `protobuf:"bytes,4,opt,name=search,proto3" json:"search,omitempty"`
}

func (m *ListItemsRequest) Reset()         { *m = ListItemsRequest{} }
func (m *ListItemsRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*ListItemsRequest) ProtoMessage()    {}

func (m *ListItemsRequest) GetStartPage() int32 {
	if m != nil {
		return m.StartPage
	}
	return 0
}

func (m *ListItemsRequest) GetPageSize() int32 {
	if m != nil {
		return m.PageSize
	}
	return 0
}

func (m *ListItemsRequest) GetStatus() string {
	if m != nil {
		return m.Status
	}
	return ""
}

func (m *ListItemsRequest) GetSearch() string {
	if m != nil {
		return m.Search
	}
	return ""
}

type ListItemsResponse struct {
	Items         []*Item `protobuf:"bytes,1,rep,name=items,proto3" json:"items,omitempty"`
	TotalElements int32   `protobuf:"varint,2,opt,name=total_elements,json=totalElements,proto3" json:"total_elements,omitempty"`
	TotalPages    int32   `protobuf:"varint,3,opt,name=total_pages,json=totalPages,proto3" json:"total_pages,omitempty"`
	CurrentPage   int32   `protobuf:"varint,4,opt,name=current_page,json=currentPage,proto3" json:"current_page,omitempty"`
	PageSize      int32   `protobuf:"varint,5,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	HasNext       bool    `protobuf:"varint,6,opt,name=has_next,json=hasNext,proto3" json:"has_next,omitempty"`
	HasPrevious   bool    `protobuf:"varint,7,opt,name=has_previous,json=hasPrevious,proto3" json:"has_previous,omitempty"`
	NextPage      int32   `protobuf:"varint,8,opt,name=next_page,json=nextPage,proto3" json:"next_page,omitempty"`
	PreviousPage  int32   `protobuf:"varint,9,opt,name=previous_page,json=previousPage,proto3" json:"previous_page,omitempty"`
}

func (m *ListItemsResponse) Reset()         { *m = ListItemsResponse{} }
func (m *ListItemsResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*ListItemsResponse) ProtoMessage()    {}

func (m *ListItemsResponse) GetItems() []*Item {
	if m != nil {
		return m.Items
	}
	return nil
}

func (m *ListItemsResponse) GetTotalElements() int32 {
	if m != nil {
		return m.TotalElements
	}
	return 0
}

func (m *ListItemsResponse) GetTotalPages() int32 {
	if m != nil {
		return m.TotalPages
	}
	return 0
}

func (m *ListItemsResponse) GetCurrentPage() int32 {
	if m != nil {
		return m.CurrentPage
	}
	return 0
}

func (m *ListItemsResponse) GetPageSize() int32 {
	if m != nil {
		return m.PageSize
	}
	return 0
}

func (m *ListItemsResponse) GetHasNext() bool {
	if m != nil {
		return m.HasNext
	}
	return false
}

func (m *ListItemsResponse) GetHasPrevious() bool {
	if m != nil {
		return m.HasPrevious
	}
	return false
}

func (m *ListItemsResponse) GetNextPage() int32 {
	if m != nil {
		return m.NextPage
	}
	return 0
}

func (m *ListItemsResponse) GetPreviousPage() int32 {
	if m != nil {
		return m.PreviousPage
	}
	return 0
}

type UpdateItemRequest struct {
	Id               string  `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name             *string `protobuf:"bytes,2,opt,name=name" json:"name,omitempty"`
	Description      *string `protobuf:"bytes,3,opt,name=description" json:"description,omitempty"`
	ClearDescription bool    `protobuf:"varint,4,opt,name=clear_description,json=clearDescription,proto3" json:"clear_description,omitempty"`
	Status           *string `protobuf:"bytes,5,opt,name=status" json:"status,omitempty"`
	ExpectedVersion  *int64  `protobuf:"varint,6,opt,name=expected_version,json=expectedVersion" json:"expected_version,omitempty"`
}

func (m *UpdateItemRequest) Reset()         { *m = UpdateItemRequest{} }
func (m *UpdateItemRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*UpdateItemRequest) ProtoMessage()    {}

func (m *UpdateItemRequest) GetId() string {
	if m != nil {
		return m.Id
	}
	return ""
}

func (m *UpdateItemRequest) GetName() string {
	if m != nil && m.Name != nil {
		return *m.Name
	}
	return ""
}

func (m *UpdateItemRequest) GetDescription() string {
	if m != nil && m.Description != nil {
		return *m.Description
	}
	return ""
}

func (m *UpdateItemRequest) GetClearDescription() bool {
	if m != nil {
		return m.ClearDescription
	}
	return false
}

func (m *UpdateItemRequest) GetStatus() string {
	if m != nil && m.Status != nil {
		return *m.Status
	}
	return ""
}

func (m *UpdateItemRequest) GetExpectedVersion() int64 {
	if m != nil && m.ExpectedVersion != nil {
		return *m.ExpectedVersion
	}
	return 0
}

type UpdateItemResponse struct {
	Item *Item `protobuf:"bytes,1,opt,name=item,proto3" json:"item,omitempty"`
}

func (m *UpdateItemResponse) Reset()         { *m = UpdateItemResponse{} }
func (m *UpdateItemResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*UpdateItemResponse) ProtoMessage()    {}

func (m *UpdateItemResponse) GetItem() *Item {
	if m != nil {
		return m.Item
	}
	return nil
}

type DeleteItemRequest struct {
	Id string `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
}

func (m *DeleteItemRequest) Reset()         { *m = DeleteItemRequest{} }
func (m *DeleteItemRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*DeleteItemRequest) ProtoMessage()    {}

func (m *DeleteItemRequest) GetId() string {
	if m != nil {
		return m.Id
	}
	return ""
}

type DeleteItemResponse struct {
	Deleted bool `protobuf:"varint,1,opt,name=deleted,proto3" json:"deleted,omitempty"`
}

func (m *DeleteItemResponse) Reset()         { *m = DeleteItemResponse{} }
func (m *DeleteItemResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*DeleteItemResponse) ProtoMessage()    {}

func (m *DeleteItemResponse) GetDeleted() bool {
	if m != nil {
		return m.Deleted
	}
	return false
}
