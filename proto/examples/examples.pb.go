// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        (unknown)
// source: examples.proto

package examples

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type LineItem struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Sku            string                 `protobuf:"bytes,1,opt,name=sku,proto3" json:"sku,omitempty"`
	Name           string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Quantity       int64                  `protobuf:"varint,3,opt,name=quantity,proto3" json:"quantity,omitempty"`
	UnitPriceCents int64                  `protobuf:"varint,4,opt,name=unit_price_cents,json=unitPriceCents,proto3" json:"unit_price_cents,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *LineItem) Reset() {
	*x = LineItem{}
	mi := &file_examples_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LineItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LineItem) ProtoMessage() {}

func (x *LineItem) ProtoReflect() protoreflect.Message {
	mi := &file_examples_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LineItem.ProtoReflect.Descriptor instead.
func (*LineItem) Descriptor() ([]byte, []int) {
	return file_examples_proto_rawDescGZIP(), []int{0}
}

func (x *LineItem) GetSku() string {
	if x != nil {
		return x.Sku
	}
	return ""
}

func (x *LineItem) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *LineItem) GetQuantity() int64 {
	if x != nil {
		return x.Quantity
	}
	return 0
}

func (x *LineItem) GetUnitPriceCents() int64 {
	if x != nil {
		return x.UnitPriceCents
	}
	return 0
}

type CreateOrder struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CustomerId    string                 `protobuf:"bytes,1,opt,name=customer_id,json=customerId,proto3" json:"customer_id,omitempty"`
	Items         []*LineItem            `protobuf:"bytes,2,rep,name=items,proto3" json:"items,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateOrder) Reset() {
	*x = CreateOrder{}
	mi := &file_examples_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateOrder) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateOrder) ProtoMessage() {}

func (x *CreateOrder) ProtoReflect() protoreflect.Message {
	mi := &file_examples_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateOrder.ProtoReflect.Descriptor instead.
func (*CreateOrder) Descriptor() ([]byte, []int) {
	return file_examples_proto_rawDescGZIP(), []int{1}
}

func (x *CreateOrder) GetCustomerId() string {
	if x != nil {
		return x.CustomerId
	}
	return ""
}

func (x *CreateOrder) GetItems() []*LineItem {
	if x != nil {
		return x.Items
	}
	return nil
}

type OrderCreated struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CustomerId    string                 `protobuf:"bytes,1,opt,name=customer_id,json=customerId,proto3" json:"customer_id,omitempty"`
	Items         []*LineItem            `protobuf:"bytes,2,rep,name=items,proto3" json:"items,omitempty"`
	SubtotalCents int64                  `protobuf:"varint,3,opt,name=subtotal_cents,json=subtotalCents,proto3" json:"subtotal_cents,omitempty"`
	CreatedAt     *timestamppb.Timestamp `protobuf:"bytes,4,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *OrderCreated) Reset() {
	*x = OrderCreated{}
	mi := &file_examples_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *OrderCreated) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*OrderCreated) ProtoMessage() {}

func (x *OrderCreated) ProtoReflect() protoreflect.Message {
	mi := &file_examples_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use OrderCreated.ProtoReflect.Descriptor instead.
func (*OrderCreated) Descriptor() ([]byte, []int) {
	return file_examples_proto_rawDescGZIP(), []int{2}
}

func (x *OrderCreated) GetCustomerId() string {
	if x != nil {
		return x.CustomerId
	}
	return ""
}

func (x *OrderCreated) GetItems() []*LineItem {
	if x != nil {
		return x.Items
	}
	return nil
}

func (x *OrderCreated) GetSubtotalCents() int64 {
	if x != nil {
		return x.SubtotalCents
	}
	return 0
}

func (x *OrderCreated) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

type SubmitPayment struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PaymentMethod string                 `protobuf:"bytes,1,opt,name=payment_method,json=paymentMethod,proto3" json:"payment_method,omitempty"`
	AmountCents   int64                  `protobuf:"varint,2,opt,name=amount_cents,json=amountCents,proto3" json:"amount_cents,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitPayment) Reset() {
	*x = SubmitPayment{}
	mi := &file_examples_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitPayment) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitPayment) ProtoMessage() {}

func (x *SubmitPayment) ProtoReflect() protoreflect.Message {
	mi := &file_examples_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitPayment.ProtoReflect.Descriptor instead.
func (*SubmitPayment) Descriptor() ([]byte, []int) {
	return file_examples_proto_rawDescGZIP(), []int{3}
}

func (x *SubmitPayment) GetPaymentMethod() string {
	if x != nil {
		return x.PaymentMethod
	}
	return ""
}

func (x *SubmitPayment) GetAmountCents() int64 {
	if x != nil {
		return x.AmountCents
	}
	return 0
}

type PaymentSubmitted struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PaymentMethod string                 `protobuf:"bytes,1,opt,name=payment_method,json=paymentMethod,proto3" json:"payment_method,omitempty"`
	AmountCents   int64                  `protobuf:"varint,2,opt,name=amount_cents,json=amountCents,proto3" json:"amount_cents,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PaymentSubmitted) Reset() {
	*x = PaymentSubmitted{}
	mi := &file_examples_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PaymentSubmitted) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PaymentSubmitted) ProtoMessage() {}

func (x *PaymentSubmitted) ProtoReflect() protoreflect.Message {
	mi := &file_examples_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PaymentSubmitted.ProtoReflect.Descriptor instead.
func (*PaymentSubmitted) Descriptor() ([]byte, []int) {
	return file_examples_proto_rawDescGZIP(), []int{4}
}

func (x *PaymentSubmitted) GetPaymentMethod() string {
	if x != nil {
		return x.PaymentMethod
	}
	return ""
}

func (x *PaymentSubmitted) GetAmountCents() int64 {
	if x != nil {
		return x.AmountCents
	}
	return 0
}

type ProcessPayment struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PaymentMethod string                 `protobuf:"bytes,1,opt,name=payment_method,json=paymentMethod,proto3" json:"payment_method,omitempty"`
	AmountCents   int64                  `protobuf:"varint,2,opt,name=amount_cents,json=amountCents,proto3" json:"amount_cents,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessPayment) Reset() {
	*x = ProcessPayment{}
	mi := &file_examples_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessPayment) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessPayment) ProtoMessage() {}

func (x *ProcessPayment) ProtoReflect() protoreflect.Message {
	mi := &file_examples_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessPayment.ProtoReflect.Descriptor instead.
func (*ProcessPayment) Descriptor() ([]byte, []int) {
	return file_examples_proto_rawDescGZIP(), []int{5}
}

func (x *ProcessPayment) GetPaymentMethod() string {
	if x != nil {
		return x.PaymentMethod
	}
	return ""
}

func (x *ProcessPayment) GetAmountCents() int64 {
	if x != nil {
		return x.AmountCents
	}
	return 0
}

type OrderCompleted struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Items           []*LineItem            `protobuf:"bytes,1,rep,name=items,proto3" json:"items,omitempty"`
	FinalTotalCents int64                  `protobuf:"varint,2,opt,name=final_total_cents,json=finalTotalCents,proto3" json:"final_total_cents,omitempty"`
	PaymentMethod   string                 `protobuf:"bytes,3,opt,name=payment_method,json=paymentMethod,proto3" json:"payment_method,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *OrderCompleted) Reset() {
	*x = OrderCompleted{}
	mi := &file_examples_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *OrderCompleted) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*OrderCompleted) ProtoMessage() {}

func (x *OrderCompleted) ProtoReflect() protoreflect.Message {
	mi := &file_examples_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use OrderCompleted.ProtoReflect.Descriptor instead.
func (*OrderCompleted) Descriptor() ([]byte, []int) {
	return file_examples_proto_rawDescGZIP(), []int{6}
}

func (x *OrderCompleted) GetItems() []*LineItem {
	if x != nil {
		return x.Items
	}
	return nil
}

func (x *OrderCompleted) GetFinalTotalCents() int64 {
	if x != nil {
		return x.FinalTotalCents
	}
	return 0
}

func (x *OrderCompleted) GetPaymentMethod() string {
	if x != nil {
		return x.PaymentMethod
	}
	return ""
}

type CancelOrder struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Reason        string                 `protobuf:"bytes,1,opt,name=reason,proto3" json:"reason,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelOrder) Reset() {
	*x = CancelOrder{}
	mi := &file_examples_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelOrder) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelOrder) ProtoMessage() {}

func (x *CancelOrder) ProtoReflect() protoreflect.Message {
	mi := &file_examples_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelOrder.ProtoReflect.Descriptor instead.
func (*CancelOrder) Descriptor() ([]byte, []int) {
	return file_examples_proto_rawDescGZIP(), []int{7}
}

func (x *CancelOrder) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

type OrderCancelled struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Reason        string                 `protobuf:"bytes,1,opt,name=reason,proto3" json:"reason,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *OrderCancelled) Reset() {
	*x = OrderCancelled{}
	mi := &file_examples_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *OrderCancelled) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*OrderCancelled) ProtoMessage() {}

func (x *OrderCancelled) ProtoReflect() protoreflect.Message {
	mi := &file_examples_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use OrderCancelled.ProtoReflect.Descriptor instead.
func (*OrderCancelled) Descriptor() ([]byte, []int) {
	return file_examples_proto_rawDescGZIP(), []int{8}
}

func (x *OrderCancelled) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

type CreateShipment struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OrderId       string                 `protobuf:"bytes,1,opt,name=order_id,json=orderId,proto3" json:"order_id,omitempty"`
	Items         []*LineItem            `protobuf:"bytes,2,rep,name=items,proto3" json:"items,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateShipment) Reset() {
	*x = CreateShipment{}
	mi := &file_examples_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateShipment) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateShipment) ProtoMessage() {}

func (x *CreateShipment) ProtoReflect() protoreflect.Message {
	mi := &file_examples_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateShipment.ProtoReflect.Descriptor instead.
func (*CreateShipment) Descriptor() ([]byte, []int) {
	return file_examples_proto_rawDescGZIP(), []int{9}
}

func (x *CreateShipment) GetOrderId() string {
	if x != nil {
		return x.OrderId
	}
	return ""
}

func (x *CreateShipment) GetItems() []*LineItem {
	if x != nil {
		return x.Items
	}
	return nil
}

type StockReserved struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OrderId       string                 `protobuf:"bytes,1,opt,name=order_id,json=orderId,proto3" json:"order_id,omitempty"`
	Quantity      int64                  `protobuf:"varint,2,opt,name=quantity,proto3" json:"quantity,omitempty"`
	NewAvailable  int64                  `protobuf:"varint,3,opt,name=new_available,json=newAvailable,proto3" json:"new_available,omitempty"`
	NewReserved   int64                  `protobuf:"varint,4,opt,name=new_reserved,json=newReserved,proto3" json:"new_reserved,omitempty"`
	NewOnHand     int64                  `protobuf:"varint,5,opt,name=new_on_hand,json=newOnHand,proto3" json:"new_on_hand,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StockReserved) Reset() {
	*x = StockReserved{}
	mi := &file_examples_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StockReserved) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StockReserved) ProtoMessage() {}

func (x *StockReserved) ProtoReflect() protoreflect.Message {
	mi := &file_examples_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StockReserved.ProtoReflect.Descriptor instead.
func (*StockReserved) Descriptor() ([]byte, []int) {
	return file_examples_proto_rawDescGZIP(), []int{10}
}

func (x *StockReserved) GetOrderId() string {
	if x != nil {
		return x.OrderId
	}
	return ""
}

func (x *StockReserved) GetQuantity() int64 {
	if x != nil {
		return x.Quantity
	}
	return 0
}

func (x *StockReserved) GetNewAvailable() int64 {
	if x != nil {
		return x.NewAvailable
	}
	return 0
}

func (x *StockReserved) GetNewReserved() int64 {
	if x != nil {
		return x.NewReserved
	}
	return 0
}

func (x *StockReserved) GetNewOnHand() int64 {
	if x != nil {
		return x.NewOnHand
	}
	return 0
}

type ItemsPacked struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PackerId      string                 `protobuf:"bytes,1,opt,name=packer_id,json=packerId,proto3" json:"packer_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ItemsPacked) Reset() {
	*x = ItemsPacked{}
	mi := &file_examples_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ItemsPacked) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ItemsPacked) ProtoMessage() {}

func (x *ItemsPacked) ProtoReflect() protoreflect.Message {
	mi := &file_examples_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ItemsPacked.ProtoReflect.Descriptor instead.
func (*ItemsPacked) Descriptor() ([]byte, []int) {
	return file_examples_proto_rawDescGZIP(), []int{11}
}

func (x *ItemsPacked) GetPackerId() string {
	if x != nil {
		return x.PackerId
	}
	return ""
}

type Ship struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Carrier        string                 `protobuf:"bytes,1,opt,name=carrier,proto3" json:"carrier,omitempty"`
	TrackingNumber string                 `protobuf:"bytes,2,opt,name=tracking_number,json=trackingNumber,proto3" json:"tracking_number,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *Ship) Reset() {
	*x = Ship{}
	mi := &file_examples_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Ship) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Ship) ProtoMessage() {}

func (x *Ship) ProtoReflect() protoreflect.Message {
	mi := &file_examples_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Ship.ProtoReflect.Descriptor instead.
func (*Ship) Descriptor() ([]byte, []int) {
	return file_examples_proto_rawDescGZIP(), []int{12}
}

func (x *Ship) GetCarrier() string {
	if x != nil {
		return x.Carrier
	}
	return ""
}

func (x *Ship) GetTrackingNumber() string {
	if x != nil {
		return x.TrackingNumber
	}
	return ""
}

type Shipped struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Carrier        string                 `protobuf:"bytes,1,opt,name=carrier,proto3" json:"carrier,omitempty"`
	TrackingNumber string                 `protobuf:"bytes,2,opt,name=tracking_number,json=trackingNumber,proto3" json:"tracking_number,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *Shipped) Reset() {
	*x = Shipped{}
	mi := &file_examples_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Shipped) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Shipped) ProtoMessage() {}

func (x *Shipped) ProtoReflect() protoreflect.Message {
	mi := &file_examples_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Shipped.ProtoReflect.Descriptor instead.
func (*Shipped) Descriptor() ([]byte, []int) {
	return file_examples_proto_rawDescGZIP(), []int{13}
}

func (x *Shipped) GetCarrier() string {
	if x != nil {
		return x.Carrier
	}
	return ""
}

func (x *Shipped) GetTrackingNumber() string {
	if x != nil {
		return x.TrackingNumber
	}
	return ""
}

// Schema evolution pair exercised by the upcaster tests.
type PlayerRegisteredV1 struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DisplayName   string                 `protobuf:"bytes,1,opt,name=display_name,json=displayName,proto3" json:"display_name,omitempty"`
	Email         string                 `protobuf:"bytes,2,opt,name=email,proto3" json:"email,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PlayerRegisteredV1) Reset() {
	*x = PlayerRegisteredV1{}
	mi := &file_examples_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PlayerRegisteredV1) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PlayerRegisteredV1) ProtoMessage() {}

func (x *PlayerRegisteredV1) ProtoReflect() protoreflect.Message {
	mi := &file_examples_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PlayerRegisteredV1.ProtoReflect.Descriptor instead.
func (*PlayerRegisteredV1) Descriptor() ([]byte, []int) {
	return file_examples_proto_rawDescGZIP(), []int{14}
}

func (x *PlayerRegisteredV1) GetDisplayName() string {
	if x != nil {
		return x.DisplayName
	}
	return ""
}

func (x *PlayerRegisteredV1) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

type PlayerRegistered struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DisplayName   string                 `protobuf:"bytes,1,opt,name=display_name,json=displayName,proto3" json:"display_name,omitempty"`
	Email         string                 `protobuf:"bytes,2,opt,name=email,proto3" json:"email,omitempty"`
	AiModelId     string                 `protobuf:"bytes,3,opt,name=ai_model_id,json=aiModelId,proto3" json:"ai_model_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PlayerRegistered) Reset() {
	*x = PlayerRegistered{}
	mi := &file_examples_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PlayerRegistered) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PlayerRegistered) ProtoMessage() {}

func (x *PlayerRegistered) ProtoReflect() protoreflect.Message {
	mi := &file_examples_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PlayerRegistered.ProtoReflect.Descriptor instead.
func (*PlayerRegistered) Descriptor() ([]byte, []int) {
	return file_examples_proto_rawDescGZIP(), []int{15}
}

func (x *PlayerRegistered) GetDisplayName() string {
	if x != nil {
		return x.DisplayName
	}
	return ""
}

func (x *PlayerRegistered) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *PlayerRegistered) GetAiModelId() string {
	if x != nil {
		return x.AiModelId
	}
	return ""
}

type RegisterPlayer struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DisplayName   string                 `protobuf:"bytes,1,opt,name=display_name,json=displayName,proto3" json:"display_name,omitempty"`
	Email         string                 `protobuf:"bytes,2,opt,name=email,proto3" json:"email,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RegisterPlayer) Reset() {
	*x = RegisterPlayer{}
	mi := &file_examples_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RegisterPlayer) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RegisterPlayer) ProtoMessage() {}

func (x *RegisterPlayer) ProtoReflect() protoreflect.Message {
	mi := &file_examples_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RegisterPlayer.ProtoReflect.Descriptor instead.
func (*RegisterPlayer) Descriptor() ([]byte, []int) {
	return file_examples_proto_rawDescGZIP(), []int{16}
}

func (x *RegisterPlayer) GetDisplayName() string {
	if x != nil {
		return x.DisplayName
	}
	return ""
}

func (x *RegisterPlayer) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

var File_examples_proto protoreflect.FileDescriptor

const file_examples_proto_rawDesc = "" +
	"\n" +
	"\x0eexamples.proto\x12\bexamples\x1a\x1fgoogle/protobuf/timestamp.proto\"v\n" +
	"\bLineItem\x12\x10\n" +
	"\x03sku\x18\x01 \x01(\tR\x03sku\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x1a\n" +
	"\bquantity\x18\x03 \x01(\x03R\bquantity\x12(\n" +
	"\x10unit_price_cents\x18\x04 \x01(\x03R\x0eunitPriceCents\"X\n" +
	"\vCreateOrder\x12\x1f\n" +
	"\vcustomer_id\x18\x01 \x01(\tR\n" +
	"customerId\x12(\n" +
	"\x05items\x18\x02 \x03(\v2\x12.examples.LineItemR\x05items\"\xbb\x01\n" +
	"\fOrderCreated\x12\x1f\n" +
	"\vcustomer_id\x18\x01 \x01(\tR\n" +
	"customerId\x12(\n" +
	"\x05items\x18\x02 \x03(\v2\x12.examples.LineItemR\x05items\x12%\n" +
	"\x0esubtotal_cents\x18\x03 \x01(\x03R\rsubtotalCents\x129\n" +
	"\n" +
	"created_at\x18\x04 \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\"Y\n" +
	"\rSubmitPayment\x12%\n" +
	"\x0epayment_method\x18\x01 \x01(\tR\rpaymentMethod\x12!\n" +
	"\famount_cents\x18\x02 \x01(\x03R\vamountCents\"\\\n" +
	"\x10PaymentSubmitted\x12%\n" +
	"\x0epayment_method\x18\x01 \x01(\tR\rpaymentMethod\x12!\n" +
	"\famount_cents\x18\x02 \x01(\x03R\vamountCents\"Z\n" +
	"\x0eProcessPayment\x12%\n" +
	"\x0epayment_method\x18\x01 \x01(\tR\rpaymentMethod\x12!\n" +
	"\famount_cents\x18\x02 \x01(\x03R\vamountCents\"\x8d\x01\n" +
	"\x0eOrderCompleted\x12(\n" +
	"\x05items\x18\x01 \x03(\v2\x12.examples.LineItemR\x05items\x12*\n" +
	"\x11final_total_cents\x18\x02 \x01(\x03R\x0ffinalTotalCents\x12%\n" +
	"\x0epayment_method\x18\x03 \x01(\tR\rpaymentMethod\"%\n" +
	"\vCancelOrder\x12\x16\n" +
	"\x06reason\x18\x01 \x01(\tR\x06reason\"(\n" +
	"\x0eOrderCancelled\x12\x16\n" +
	"\x06reason\x18\x01 \x01(\tR\x06reason\"U\n" +
	"\x0eCreateShipment\x12\x19\n" +
	"\border_id\x18\x01 \x01(\tR\aorderId\x12(\n" +
	"\x05items\x18\x02 \x03(\v2\x12.examples.LineItemR\x05items\"\xae\x01\n" +
	"\rStockReserved\x12\x19\n" +
	"\border_id\x18\x01 \x01(\tR\aorderId\x12\x1a\n" +
	"\bquantity\x18\x02 \x01(\x03R\bquantity\x12#\n" +
	"\rnew_available\x18\x03 \x01(\x03R\fnewAvailable\x12!\n" +
	"\fnew_reserved\x18\x04 \x01(\x03R\vnewReserved\x12\x1e\n" +
	"\vnew_on_hand\x18\x05 \x01(\x03R\tnewOnHand\"*\n" +
	"\vItemsPacked\x12\x1b\n" +
	"\tpacker_id\x18\x01 \x01(\tR\bpackerId\"I\n" +
	"\x04Ship\x12\x18\n" +
	"\acarrier\x18\x01 \x01(\tR\acarrier\x12'\n" +
	"\x0ftracking_number\x18\x02 \x01(\tR\x0etrackingNumber\"L\n" +
	"\aShipped\x12\x18\n" +
	"\acarrier\x18\x01 \x01(\tR\acarrier\x12'\n" +
	"\x0ftracking_number\x18\x02 \x01(\tR\x0etrackingNumber\"M\n" +
	"\x12PlayerRegisteredV1\x12!\n" +
	"\fdisplay_name\x18\x01 \x01(\tR\vdisplayName\x12\x14\n" +
	"\x05email\x18\x02 \x01(\tR\x05email\"k\n" +
	"\x10PlayerRegistered\x12!\n" +
	"\fdisplay_name\x18\x01 \x01(\tR\vdisplayName\x12\x14\n" +
	"\x05email\x18\x02 \x01(\tR\x05email\x12\x1e\n" +
	"\vai_model_id\x18\x03 \x01(\tR\taiModelId\"I\n" +
	"\x0eRegisterPlayer\x12!\n" +
	"\fdisplay_name\x18\x01 \x01(\tR\vdisplayName\x12\x14\n" +
	"\x05email\x18\x02 \x01(\tR\x05emailB1Z/github.com/angzarr-io/angzarr-go/proto/examplesb\x06proto3"

var (
	file_examples_proto_rawDescOnce sync.Once
	file_examples_proto_rawDescData []byte
)

func file_examples_proto_rawDescGZIP() []byte {
	file_examples_proto_rawDescOnce.Do(func() {
		file_examples_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_examples_proto_rawDesc), len(file_examples_proto_rawDesc)))
	})
	return file_examples_proto_rawDescData
}

var file_examples_proto_msgTypes = make([]protoimpl.MessageInfo, 17)
var file_examples_proto_goTypes = []any{
	(*LineItem)(nil),              // 0: examples.LineItem
	(*CreateOrder)(nil),           // 1: examples.CreateOrder
	(*OrderCreated)(nil),          // 2: examples.OrderCreated
	(*SubmitPayment)(nil),         // 3: examples.SubmitPayment
	(*PaymentSubmitted)(nil),      // 4: examples.PaymentSubmitted
	(*ProcessPayment)(nil),        // 5: examples.ProcessPayment
	(*OrderCompleted)(nil),        // 6: examples.OrderCompleted
	(*CancelOrder)(nil),           // 7: examples.CancelOrder
	(*OrderCancelled)(nil),        // 8: examples.OrderCancelled
	(*CreateShipment)(nil),        // 9: examples.CreateShipment
	(*StockReserved)(nil),         // 10: examples.StockReserved
	(*ItemsPacked)(nil),           // 11: examples.ItemsPacked
	(*Ship)(nil),                  // 12: examples.Ship
	(*Shipped)(nil),               // 13: examples.Shipped
	(*PlayerRegisteredV1)(nil),    // 14: examples.PlayerRegisteredV1
	(*PlayerRegistered)(nil),      // 15: examples.PlayerRegistered
	(*RegisterPlayer)(nil),        // 16: examples.RegisterPlayer
	(*timestamppb.Timestamp)(nil), // 17: google.protobuf.Timestamp
}
var file_examples_proto_depIdxs = []int32{
	0,  // 0: examples.CreateOrder.items:type_name -> examples.LineItem
	0,  // 1: examples.OrderCreated.items:type_name -> examples.LineItem
	17, // 2: examples.OrderCreated.created_at:type_name -> google.protobuf.Timestamp
	0,  // 3: examples.OrderCompleted.items:type_name -> examples.LineItem
	0,  // 4: examples.CreateShipment.items:type_name -> examples.LineItem
	5,  // [5:5] is the sub-list for method output_type
	5,  // [5:5] is the sub-list for method input_type
	5,  // [5:5] is the sub-list for extension type_name
	5,  // [5:5] is the sub-list for extension extendee
	0,  // [0:5] is the sub-list for field type_name
}

func init() { file_examples_proto_init() }
func file_examples_proto_init() {
	if File_examples_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_examples_proto_rawDesc), len(file_examples_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   17,
			NumExtensions: 0,
			NumServices:   0,
		},
		GoTypes:           file_examples_proto_goTypes,
		DependencyIndexes: file_examples_proto_depIdxs,
		MessageInfos:      file_examples_proto_msgTypes,
	}.Build()
	File_examples_proto = out.File
	file_examples_proto_goTypes = nil
	file_examples_proto_depIdxs = nil
}
