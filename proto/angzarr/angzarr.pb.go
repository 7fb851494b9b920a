// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        (unknown)
// source: angzarr.proto

package angzarr

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	anypb "google.golang.org/protobuf/types/known/anypb"
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

// MergeStrategy is an opaque transport-level hint resolved by the gateway.
type MergeStrategy int32

const (
	MergeStrategy_MERGE_UNSPECIFIED MergeStrategy = 0
	MergeStrategy_MERGE_SEQUENTIAL  MergeStrategy = 1
	MergeStrategy_MERGE_COMMUTATIVE MergeStrategy = 2
)

// Enum value maps for MergeStrategy.
var (
	MergeStrategy_name = map[int32]string{
		0: "MERGE_UNSPECIFIED",
		1: "MERGE_SEQUENTIAL",
		2: "MERGE_COMMUTATIVE",
	}
	MergeStrategy_value = map[string]int32{
		"MERGE_UNSPECIFIED": 0,
		"MERGE_SEQUENTIAL":  1,
		"MERGE_COMMUTATIVE": 2,
	}
)

func (x MergeStrategy) Enum() *MergeStrategy {
	p := new(MergeStrategy)
	*p = x
	return p
}

func (x MergeStrategy) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (MergeStrategy) Descriptor() protoreflect.EnumDescriptor {
	return file_angzarr_proto_enumTypes[0].Descriptor()
}

func (MergeStrategy) Type() protoreflect.EnumType {
	return &file_angzarr_proto_enumTypes[0]
}

func (x MergeStrategy) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use MergeStrategy.Descriptor instead.
func (MergeStrategy) EnumDescriptor() ([]byte, []int) {
	return file_angzarr_proto_rawDescGZIP(), []int{0}
}

// UUID is a 16-byte opaque identifier.
type UUID struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Value         []byte                 `protobuf:"bytes,1,opt,name=value,proto3" json:"value,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UUID) Reset() {
	*x = UUID{}
	mi := &file_angzarr_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UUID) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UUID) ProtoMessage() {}

func (x *UUID) ProtoReflect() protoreflect.Message {
	mi := &file_angzarr_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UUID.ProtoReflect.Descriptor instead.
func (*UUID) Descriptor() ([]byte, []int) {
	return file_angzarr_proto_rawDescGZIP(), []int{0}
}

func (x *UUID) GetValue() []byte {
	if x != nil {
		return x.Value
	}
	return nil
}

// DomainDivergence marks where an edition diverges from the main timeline.
type DomainDivergence struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Domain        string                 `protobuf:"bytes,1,opt,name=domain,proto3" json:"domain,omitempty"`
	Sequence      uint64                 `protobuf:"varint,2,opt,name=sequence,proto3" json:"sequence,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DomainDivergence) Reset() {
	*x = DomainDivergence{}
	mi := &file_angzarr_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DomainDivergence) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DomainDivergence) ProtoMessage() {}

func (x *DomainDivergence) ProtoReflect() protoreflect.Message {
	mi := &file_angzarr_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DomainDivergence.ProtoReflect.Descriptor instead.
func (*DomainDivergence) Descriptor() ([]byte, []int) {
	return file_angzarr_proto_rawDescGZIP(), []int{1}
}

func (x *DomainDivergence) GetDomain() string {
	if x != nil {
		return x.Domain
	}
	return ""
}

func (x *DomainDivergence) GetSequence() uint64 {
	if x != nil {
		return x.Sequence
	}
	return 0
}

// Edition names an alternate timeline with optional divergence points.
type Edition struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Divergences   []*DomainDivergence    `protobuf:"bytes,2,rep,name=divergences,proto3" json:"divergences,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Edition) Reset() {
	*x = Edition{}
	mi := &file_angzarr_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Edition) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Edition) ProtoMessage() {}

func (x *Edition) ProtoReflect() protoreflect.Message {
	mi := &file_angzarr_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Edition.ProtoReflect.Descriptor instead.
func (*Edition) Descriptor() ([]byte, []int) {
	return file_angzarr_proto_rawDescGZIP(), []int{2}
}

func (x *Edition) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Edition) GetDivergences() []*DomainDivergence {
	if x != nil {
		return x.Divergences
	}
	return nil
}

// Cover is the addressing envelope for every book.
type Cover struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Domain        string                 `protobuf:"bytes,1,opt,name=domain,proto3" json:"domain,omitempty"`
	Root          *UUID                  `protobuf:"bytes,2,opt,name=root,proto3" json:"root,omitempty"`
	CorrelationId string                 `protobuf:"bytes,3,opt,name=correlation_id,json=correlationId,proto3" json:"correlation_id,omitempty"`
	Edition       *Edition               `protobuf:"bytes,4,opt,name=edition,proto3" json:"edition,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Cover) Reset() {
	*x = Cover{}
	mi := &file_angzarr_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Cover) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Cover) ProtoMessage() {}

func (x *Cover) ProtoReflect() protoreflect.Message {
	mi := &file_angzarr_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Cover.ProtoReflect.Descriptor instead.
func (*Cover) Descriptor() ([]byte, []int) {
	return file_angzarr_proto_rawDescGZIP(), []int{3}
}

func (x *Cover) GetDomain() string {
	if x != nil {
		return x.Domain
	}
	return ""
}

func (x *Cover) GetRoot() *UUID {
	if x != nil {
		return x.Root
	}
	return nil
}

func (x *Cover) GetCorrelationId() string {
	if x != nil {
		return x.CorrelationId
	}
	return ""
}

func (x *Cover) GetEdition() *Edition {
	if x != nil {
		return x.Edition
	}
	return nil
}

// EventPage is a single sequenced event within an EventBook.
type EventPage struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Sequence      uint64                 `protobuf:"varint,1,opt,name=sequence,proto3" json:"sequence,omitempty"`
	Event         *anypb.Any             `protobuf:"bytes,2,opt,name=event,proto3" json:"event,omitempty"`
	CreatedAt     *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	Synchronous   bool                   `protobuf:"varint,4,opt,name=synchronous,proto3" json:"synchronous,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EventPage) Reset() {
	*x = EventPage{}
	mi := &file_angzarr_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EventPage) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EventPage) ProtoMessage() {}

func (x *EventPage) ProtoReflect() protoreflect.Message {
	mi := &file_angzarr_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EventPage.ProtoReflect.Descriptor instead.
func (*EventPage) Descriptor() ([]byte, []int) {
	return file_angzarr_proto_rawDescGZIP(), []int{4}
}

func (x *EventPage) GetSequence() uint64 {
	if x != nil {
		return x.Sequence
	}
	return 0
}

func (x *EventPage) GetEvent() *anypb.Any {
	if x != nil {
		return x.Event
	}
	return nil
}

func (x *EventPage) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

func (x *EventPage) GetSynchronous() bool {
	if x != nil {
		return x.Synchronous
	}
	return false
}

// CommandPage carries a command with the expected destination sequence
// at submission time. The gateway rejects the command if the destination's
// next sequence does not match.
type CommandPage struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Sequence      uint64                 `protobuf:"varint,1,opt,name=sequence,proto3" json:"sequence,omitempty"`
	Command       *anypb.Any             `protobuf:"bytes,2,opt,name=command,proto3" json:"command,omitempty"`
	MergeStrategy MergeStrategy          `protobuf:"varint,3,opt,name=merge_strategy,json=mergeStrategy,proto3,enum=angzarr.MergeStrategy" json:"merge_strategy,omitempty"`
	Synchronous   bool                   `protobuf:"varint,4,opt,name=synchronous,proto3" json:"synchronous,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CommandPage) Reset() {
	*x = CommandPage{}
	mi := &file_angzarr_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CommandPage) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CommandPage) ProtoMessage() {}

func (x *CommandPage) ProtoReflect() protoreflect.Message {
	mi := &file_angzarr_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CommandPage.ProtoReflect.Descriptor instead.
func (*CommandPage) Descriptor() ([]byte, []int) {
	return file_angzarr_proto_rawDescGZIP(), []int{5}
}

func (x *CommandPage) GetSequence() uint64 {
	if x != nil {
		return x.Sequence
	}
	return 0
}

func (x *CommandPage) GetCommand() *anypb.Any {
	if x != nil {
		return x.Command
	}
	return nil
}

func (x *CommandPage) GetMergeStrategy() MergeStrategy {
	if x != nil {
		return x.MergeStrategy
	}
	return MergeStrategy_MERGE_UNSPECIFIED
}

func (x *CommandPage) GetSynchronous() bool {
	if x != nil {
		return x.Synchronous
	}
	return false
}

// Snapshot replaces events with sequence <= at_sequence during replay.
type Snapshot struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	State         *anypb.Any             `protobuf:"bytes,1,opt,name=state,proto3" json:"state,omitempty"`
	AtSequence    uint64                 `protobuf:"varint,2,opt,name=at_sequence,json=atSequence,proto3" json:"at_sequence,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Snapshot) Reset() {
	*x = Snapshot{}
	mi := &file_angzarr_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Snapshot) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Snapshot) ProtoMessage() {}

func (x *Snapshot) ProtoReflect() protoreflect.Message {
	mi := &file_angzarr_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Snapshot.ProtoReflect.Descriptor instead.
func (*Snapshot) Descriptor() ([]byte, []int) {
	return file_angzarr_proto_rawDescGZIP(), []int{6}
}

func (x *Snapshot) GetState() *anypb.Any {
	if x != nil {
		return x.State
	}
	return nil
}

func (x *Snapshot) GetAtSequence() uint64 {
	if x != nil {
		return x.AtSequence
	}
	return 0
}

// EventBook is the atomic unit of event transport for one aggregate root.
type EventBook struct {
	state    protoimpl.MessageState `protogen:"open.v1"`
	Cover    *Cover                 `protobuf:"bytes,1,opt,name=cover,proto3" json:"cover,omitempty"`
	Snapshot *Snapshot              `protobuf:"bytes,2,opt,name=snapshot,proto3" json:"snapshot,omitempty"`
	Pages    []*EventPage           `protobuf:"bytes,3,rep,name=pages,proto3" json:"pages,omitempty"`
	// Computed by the gateway on load: the sequence the next event will take.
	NextSequence  uint64 `protobuf:"varint,4,opt,name=next_sequence,json=nextSequence,proto3" json:"next_sequence,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EventBook) Reset() {
	*x = EventBook{}
	mi := &file_angzarr_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EventBook) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EventBook) ProtoMessage() {}

func (x *EventBook) ProtoReflect() protoreflect.Message {
	mi := &file_angzarr_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EventBook.ProtoReflect.Descriptor instead.
func (*EventBook) Descriptor() ([]byte, []int) {
	return file_angzarr_proto_rawDescGZIP(), []int{7}
}

func (x *EventBook) GetCover() *Cover {
	if x != nil {
		return x.Cover
	}
	return nil
}

func (x *EventBook) GetSnapshot() *Snapshot {
	if x != nil {
		return x.Snapshot
	}
	return nil
}

func (x *EventBook) GetPages() []*EventPage {
	if x != nil {
		return x.Pages
	}
	return nil
}

func (x *EventBook) GetNextSequence() uint64 {
	if x != nil {
		return x.NextSequence
	}
	return 0
}

// CommandBook is the atomic unit of command transport for one aggregate root.
type CommandBook struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Cover         *Cover                 `protobuf:"bytes,1,opt,name=cover,proto3" json:"cover,omitempty"`
	Pages         []*CommandPage         `protobuf:"bytes,2,rep,name=pages,proto3" json:"pages,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CommandBook) Reset() {
	*x = CommandBook{}
	mi := &file_angzarr_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CommandBook) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CommandBook) ProtoMessage() {}

func (x *CommandBook) ProtoReflect() protoreflect.Message {
	mi := &file_angzarr_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CommandBook.ProtoReflect.Descriptor instead.
func (*CommandBook) Descriptor() ([]byte, []int) {
	return file_angzarr_proto_rawDescGZIP(), []int{8}
}

func (x *CommandBook) GetCover() *Cover {
	if x != nil {
		return x.Cover
	}
	return nil
}

func (x *CommandBook) GetPages() []*CommandPage {
	if x != nil {
		return x.Pages
	}
	return nil
}

// ContextualCommand pairs a command with the prior history of its target.
type ContextualCommand struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Command       *CommandBook           `protobuf:"bytes,1,opt,name=command,proto3" json:"command,omitempty"`
	Events        *EventBook             `protobuf:"bytes,2,opt,name=events,proto3" json:"events,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ContextualCommand) Reset() {
	*x = ContextualCommand{}
	mi := &file_angzarr_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ContextualCommand) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ContextualCommand) ProtoMessage() {}

func (x *ContextualCommand) ProtoReflect() protoreflect.Message {
	mi := &file_angzarr_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ContextualCommand.ProtoReflect.Descriptor instead.
func (*ContextualCommand) Descriptor() ([]byte, []int) {
	return file_angzarr_proto_rawDescGZIP(), []int{9}
}

func (x *ContextualCommand) GetCommand() *CommandBook {
	if x != nil {
		return x.Command
	}
	return nil
}

func (x *ContextualCommand) GetEvents() *EventBook {
	if x != nil {
		return x.Events
	}
	return nil
}

// RevocationResponse tells the gateway how to treat a rejected command chain.
type RevocationResponse struct {
	state                 protoimpl.MessageState `protogen:"open.v1"`
	EmitSystemRevocation  bool                   `protobuf:"varint,1,opt,name=emit_system_revocation,json=emitSystemRevocation,proto3" json:"emit_system_revocation,omitempty"`
	SendToDeadLetterQueue bool                   `protobuf:"varint,2,opt,name=send_to_dead_letter_queue,json=sendToDeadLetterQueue,proto3" json:"send_to_dead_letter_queue,omitempty"`
	Escalate              bool                   `protobuf:"varint,3,opt,name=escalate,proto3" json:"escalate,omitempty"`
	Abort                 bool                   `protobuf:"varint,4,opt,name=abort,proto3" json:"abort,omitempty"`
	Reason                string                 `protobuf:"bytes,5,opt,name=reason,proto3" json:"reason,omitempty"`
	unknownFields         protoimpl.UnknownFields
	sizeCache             protoimpl.SizeCache
}

func (x *RevocationResponse) Reset() {
	*x = RevocationResponse{}
	mi := &file_angzarr_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RevocationResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RevocationResponse) ProtoMessage() {}

func (x *RevocationResponse) ProtoReflect() protoreflect.Message {
	mi := &file_angzarr_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RevocationResponse.ProtoReflect.Descriptor instead.
func (*RevocationResponse) Descriptor() ([]byte, []int) {
	return file_angzarr_proto_rawDescGZIP(), []int{10}
}

func (x *RevocationResponse) GetEmitSystemRevocation() bool {
	if x != nil {
		return x.EmitSystemRevocation
	}
	return false
}

func (x *RevocationResponse) GetSendToDeadLetterQueue() bool {
	if x != nil {
		return x.SendToDeadLetterQueue
	}
	return false
}

func (x *RevocationResponse) GetEscalate() bool {
	if x != nil {
		return x.Escalate
	}
	return false
}

func (x *RevocationResponse) GetAbort() bool {
	if x != nil {
		return x.Abort
	}
	return false
}

func (x *RevocationResponse) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

// BusinessResponse is the aggregate's answer to a ContextualCommand.
type BusinessResponse struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Types that are valid to be assigned to Result:
	//
	//	*BusinessResponse_Events
	//	*BusinessResponse_Revocation
	Result        isBusinessResponse_Result `protobuf_oneof:"result"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BusinessResponse) Reset() {
	*x = BusinessResponse{}
	mi := &file_angzarr_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BusinessResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BusinessResponse) ProtoMessage() {}

func (x *BusinessResponse) ProtoReflect() protoreflect.Message {
	mi := &file_angzarr_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BusinessResponse.ProtoReflect.Descriptor instead.
func (*BusinessResponse) Descriptor() ([]byte, []int) {
	return file_angzarr_proto_rawDescGZIP(), []int{11}
}

func (x *BusinessResponse) GetResult() isBusinessResponse_Result {
	if x != nil {
		return x.Result
	}
	return nil
}

func (x *BusinessResponse) GetEvents() *EventBook {
	if x != nil {
		if x, ok := x.Result.(*BusinessResponse_Events); ok {
			return x.Events
		}
	}
	return nil
}

func (x *BusinessResponse) GetRevocation() *RevocationResponse {
	if x != nil {
		if x, ok := x.Result.(*BusinessResponse_Revocation); ok {
			return x.Revocation
		}
	}
	return nil
}

type isBusinessResponse_Result interface {
	isBusinessResponse_Result()
}

type BusinessResponse_Events struct {
	Events *EventBook `protobuf:"bytes,1,opt,name=events,proto3,oneof"`
}

type BusinessResponse_Revocation struct {
	Revocation *RevocationResponse `protobuf:"bytes,2,opt,name=revocation,proto3,oneof"`
}

func (*BusinessResponse_Events) isBusinessResponse_Result() {}

func (*BusinessResponse_Revocation) isBusinessResponse_Result() {}

// CommandResponse is returned by the gateway after command execution.
type CommandResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Events        *EventBook             `protobuf:"bytes,1,opt,name=events,proto3" json:"events,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CommandResponse) Reset() {
	*x = CommandResponse{}
	mi := &file_angzarr_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CommandResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CommandResponse) ProtoMessage() {}

func (x *CommandResponse) ProtoReflect() protoreflect.Message {
	mi := &file_angzarr_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CommandResponse.ProtoReflect.Descriptor instead.
func (*CommandResponse) Descriptor() ([]byte, []int) {
	return file_angzarr_proto_rawDescGZIP(), []int{12}
}

func (x *CommandResponse) GetEvents() *EventBook {
	if x != nil {
		return x.Events
	}
	return nil
}

// Projection is a projector's output for a set of observed events.
// sequence equals the highest event sequence consumed.
type Projection struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Cover         *Cover                 `protobuf:"bytes,1,opt,name=cover,proto3" json:"cover,omitempty"`
	Projector     string                 `protobuf:"bytes,2,opt,name=projector,proto3" json:"projector,omitempty"`
	Sequence      uint64                 `protobuf:"varint,3,opt,name=sequence,proto3" json:"sequence,omitempty"`
	Projection    *anypb.Any             `protobuf:"bytes,4,opt,name=projection,proto3" json:"projection,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Projection) Reset() {
	*x = Projection{}
	mi := &file_angzarr_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Projection) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Projection) ProtoMessage() {}

func (x *Projection) ProtoReflect() protoreflect.Message {
	mi := &file_angzarr_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Projection.ProtoReflect.Descriptor instead.
func (*Projection) Descriptor() ([]byte, []int) {
	return file_angzarr_proto_rawDescGZIP(), []int{13}
}

func (x *Projection) GetCover() *Cover {
	if x != nil {
		return x.Cover
	}
	return nil
}

func (x *Projection) GetProjector() string {
	if x != nil {
		return x.Projector
	}
	return ""
}

func (x *Projection) GetSequence() uint64 {
	if x != nil {
		return x.Sequence
	}
	return 0
}

func (x *Projection) GetProjection() *anypb.Any {
	if x != nil {
		return x.Projection
	}
	return nil
}

// Target describes a (domain, types) subscription or output edge.
type Target struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Domain        string                 `protobuf:"bytes,1,opt,name=domain,proto3" json:"domain,omitempty"`
	Types         []string               `protobuf:"bytes,2,rep,name=types,proto3" json:"types,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Target) Reset() {
	*x = Target{}
	mi := &file_angzarr_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Target) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Target) ProtoMessage() {}

func (x *Target) ProtoReflect() protoreflect.Message {
	mi := &file_angzarr_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Target.ProtoReflect.Descriptor instead.
func (*Target) Descriptor() ([]byte, []int) {
	return file_angzarr_proto_rawDescGZIP(), []int{14}
}

func (x *Target) GetDomain() string {
	if x != nil {
		return x.Domain
	}
	return ""
}

func (x *Target) GetTypes() []string {
	if x != nil {
		return x.Types
	}
	return nil
}

// ComponentDescriptor is published for topology discovery.
type ComponentDescriptor struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	ComponentType string                 `protobuf:"bytes,2,opt,name=component_type,json=componentType,proto3" json:"component_type,omitempty"`
	Inputs        []*Target              `protobuf:"bytes,3,rep,name=inputs,proto3" json:"inputs,omitempty"`
	Outputs       []*Target              `protobuf:"bytes,4,rep,name=outputs,proto3" json:"outputs,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ComponentDescriptor) Reset() {
	*x = ComponentDescriptor{}
	mi := &file_angzarr_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ComponentDescriptor) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ComponentDescriptor) ProtoMessage() {}

func (x *ComponentDescriptor) ProtoReflect() protoreflect.Message {
	mi := &file_angzarr_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ComponentDescriptor.ProtoReflect.Descriptor instead.
func (*ComponentDescriptor) Descriptor() ([]byte, []int) {
	return file_angzarr_proto_rawDescGZIP(), []int{15}
}

func (x *ComponentDescriptor) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *ComponentDescriptor) GetComponentType() string {
	if x != nil {
		return x.ComponentType
	}
	return ""
}

func (x *ComponentDescriptor) GetInputs() []*Target {
	if x != nil {
		return x.Inputs
	}
	return nil
}

func (x *ComponentDescriptor) GetOutputs() []*Target {
	if x != nil {
		return x.Outputs
	}
	return nil
}

type GetDescriptorRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDescriptorRequest) Reset() {
	*x = GetDescriptorRequest{}
	mi := &file_angzarr_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDescriptorRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDescriptorRequest) ProtoMessage() {}

func (x *GetDescriptorRequest) ProtoReflect() protoreflect.Message {
	mi := &file_angzarr_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDescriptorRequest.ProtoReflect.Descriptor instead.
func (*GetDescriptorRequest) Descriptor() ([]byte, []int) {
	return file_angzarr_proto_rawDescGZIP(), []int{16}
}

// Notification is an opaque envelope delivered outside the command path.
type Notification struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Payload       *anypb.Any             `protobuf:"bytes,1,opt,name=payload,proto3" json:"payload,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Notification) Reset() {
	*x = Notification{}
	mi := &file_angzarr_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Notification) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Notification) ProtoMessage() {}

func (x *Notification) ProtoReflect() protoreflect.Message {
	mi := &file_angzarr_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Notification.ProtoReflect.Descriptor instead.
func (*Notification) Descriptor() ([]byte, []int) {
	return file_angzarr_proto_rawDescGZIP(), []int{17}
}

func (x *Notification) GetPayload() *anypb.Any {
	if x != nil {
		return x.Payload
	}
	return nil
}

// RejectionNotification is delivered to a command issuer when one of its
// downstream commands was refused.
type RejectionNotification struct {
	state               protoimpl.MessageState `protogen:"open.v1"`
	IssuerName          string                 `protobuf:"bytes,1,opt,name=issuer_name,json=issuerName,proto3" json:"issuer_name,omitempty"`
	IssuerType          string                 `protobuf:"bytes,2,opt,name=issuer_type,json=issuerType,proto3" json:"issuer_type,omitempty"`
	SourceEventSequence uint64                 `protobuf:"varint,3,opt,name=source_event_sequence,json=sourceEventSequence,proto3" json:"source_event_sequence,omitempty"`
	RejectionReason     string                 `protobuf:"bytes,4,opt,name=rejection_reason,json=rejectionReason,proto3" json:"rejection_reason,omitempty"`
	RejectedCommand     *CommandBook           `protobuf:"bytes,5,opt,name=rejected_command,json=rejectedCommand,proto3" json:"rejected_command,omitempty"`
	SourceAggregate     *Cover                 `protobuf:"bytes,6,opt,name=source_aggregate,json=sourceAggregate,proto3" json:"source_aggregate,omitempty"`
	unknownFields       protoimpl.UnknownFields
	sizeCache           protoimpl.SizeCache
}

func (x *RejectionNotification) Reset() {
	*x = RejectionNotification{}
	mi := &file_angzarr_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RejectionNotification) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RejectionNotification) ProtoMessage() {}

func (x *RejectionNotification) ProtoReflect() protoreflect.Message {
	mi := &file_angzarr_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RejectionNotification.ProtoReflect.Descriptor instead.
func (*RejectionNotification) Descriptor() ([]byte, []int) {
	return file_angzarr_proto_rawDescGZIP(), []int{18}
}

func (x *RejectionNotification) GetIssuerName() string {
	if x != nil {
		return x.IssuerName
	}
	return ""
}

func (x *RejectionNotification) GetIssuerType() string {
	if x != nil {
		return x.IssuerType
	}
	return ""
}

func (x *RejectionNotification) GetSourceEventSequence() uint64 {
	if x != nil {
		return x.SourceEventSequence
	}
	return 0
}

func (x *RejectionNotification) GetRejectionReason() string {
	if x != nil {
		return x.RejectionReason
	}
	return ""
}

func (x *RejectionNotification) GetRejectedCommand() *CommandBook {
	if x != nil {
		return x.RejectedCommand
	}
	return nil
}

func (x *RejectionNotification) GetSourceAggregate() *Cover {
	if x != nil {
		return x.SourceAggregate
	}
	return nil
}

// PrerequisiteCompleted is a process manager progress marker: one observed
// prerequisite in a fan-in workflow.
type PrerequisiteCompleted struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Prerequisite  string                 `protobuf:"bytes,1,opt,name=prerequisite,proto3" json:"prerequisite,omitempty"`
	Completed     []string               `protobuf:"bytes,2,rep,name=completed,proto3" json:"completed,omitempty"`
	Remaining     []string               `protobuf:"bytes,3,rep,name=remaining,proto3" json:"remaining,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PrerequisiteCompleted) Reset() {
	*x = PrerequisiteCompleted{}
	mi := &file_angzarr_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PrerequisiteCompleted) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PrerequisiteCompleted) ProtoMessage() {}

func (x *PrerequisiteCompleted) ProtoReflect() protoreflect.Message {
	mi := &file_angzarr_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PrerequisiteCompleted.ProtoReflect.Descriptor instead.
func (*PrerequisiteCompleted) Descriptor() ([]byte, []int) {
	return file_angzarr_proto_rawDescGZIP(), []int{19}
}

func (x *PrerequisiteCompleted) GetPrerequisite() string {
	if x != nil {
		return x.Prerequisite
	}
	return ""
}

func (x *PrerequisiteCompleted) GetCompleted() []string {
	if x != nil {
		return x.Completed
	}
	return nil
}

func (x *PrerequisiteCompleted) GetRemaining() []string {
	if x != nil {
		return x.Remaining
	}
	return nil
}

// DispatchIssued is the terminal fan-in marker. Its presence suppresses
// re-emission of the fan-out commands on subsequent triggers.
type DispatchIssued struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Completed     []string               `protobuf:"bytes,1,rep,name=completed,proto3" json:"completed,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DispatchIssued) Reset() {
	*x = DispatchIssued{}
	mi := &file_angzarr_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DispatchIssued) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DispatchIssued) ProtoMessage() {}

func (x *DispatchIssued) ProtoReflect() protoreflect.Message {
	mi := &file_angzarr_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DispatchIssued.ProtoReflect.Descriptor instead.
func (*DispatchIssued) Descriptor() ([]byte, []int) {
	return file_angzarr_proto_rawDescGZIP(), []int{20}
}

func (x *DispatchIssued) GetCompleted() []string {
	if x != nil {
		return x.Completed
	}
	return nil
}

type SagaPrepareRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Source        *EventBook             `protobuf:"bytes,1,opt,name=source,proto3" json:"source,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SagaPrepareRequest) Reset() {
	*x = SagaPrepareRequest{}
	mi := &file_angzarr_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SagaPrepareRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SagaPrepareRequest) ProtoMessage() {}

func (x *SagaPrepareRequest) ProtoReflect() protoreflect.Message {
	mi := &file_angzarr_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SagaPrepareRequest.ProtoReflect.Descriptor instead.
func (*SagaPrepareRequest) Descriptor() ([]byte, []int) {
	return file_angzarr_proto_rawDescGZIP(), []int{21}
}

func (x *SagaPrepareRequest) GetSource() *EventBook {
	if x != nil {
		return x.Source
	}
	return nil
}

type SagaPrepareResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Destinations  []*Cover               `protobuf:"bytes,1,rep,name=destinations,proto3" json:"destinations,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SagaPrepareResponse) Reset() {
	*x = SagaPrepareResponse{}
	mi := &file_angzarr_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SagaPrepareResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SagaPrepareResponse) ProtoMessage() {}

func (x *SagaPrepareResponse) ProtoReflect() protoreflect.Message {
	mi := &file_angzarr_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SagaPrepareResponse.ProtoReflect.Descriptor instead.
func (*SagaPrepareResponse) Descriptor() ([]byte, []int) {
	return file_angzarr_proto_rawDescGZIP(), []int{22}
}

func (x *SagaPrepareResponse) GetDestinations() []*Cover {
	if x != nil {
		return x.Destinations
	}
	return nil
}

type SagaExecuteRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Source        *EventBook             `protobuf:"bytes,1,opt,name=source,proto3" json:"source,omitempty"`
	Destinations  []*EventBook           `protobuf:"bytes,2,rep,name=destinations,proto3" json:"destinations,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SagaExecuteRequest) Reset() {
	*x = SagaExecuteRequest{}
	mi := &file_angzarr_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SagaExecuteRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SagaExecuteRequest) ProtoMessage() {}

func (x *SagaExecuteRequest) ProtoReflect() protoreflect.Message {
	mi := &file_angzarr_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SagaExecuteRequest.ProtoReflect.Descriptor instead.
func (*SagaExecuteRequest) Descriptor() ([]byte, []int) {
	return file_angzarr_proto_rawDescGZIP(), []int{23}
}

func (x *SagaExecuteRequest) GetSource() *EventBook {
	if x != nil {
		return x.Source
	}
	return nil
}

func (x *SagaExecuteRequest) GetDestinations() []*EventBook {
	if x != nil {
		return x.Destinations
	}
	return nil
}

type SagaResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Commands      []*CommandBook         `protobuf:"bytes,1,rep,name=commands,proto3" json:"commands,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SagaResponse) Reset() {
	*x = SagaResponse{}
	mi := &file_angzarr_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SagaResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SagaResponse) ProtoMessage() {}

func (x *SagaResponse) ProtoReflect() protoreflect.Message {
	mi := &file_angzarr_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SagaResponse.ProtoReflect.Descriptor instead.
func (*SagaResponse) Descriptor() ([]byte, []int) {
	return file_angzarr_proto_rawDescGZIP(), []int{24}
}

func (x *SagaResponse) GetCommands() []*CommandBook {
	if x != nil {
		return x.Commands
	}
	return nil
}

type ProcessManagerPrepareRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Trigger       *EventBook             `protobuf:"bytes,1,opt,name=trigger,proto3" json:"trigger,omitempty"`
	ProcessState  *EventBook             `protobuf:"bytes,2,opt,name=process_state,json=processState,proto3" json:"process_state,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessManagerPrepareRequest) Reset() {
	*x = ProcessManagerPrepareRequest{}
	mi := &file_angzarr_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessManagerPrepareRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessManagerPrepareRequest) ProtoMessage() {}

func (x *ProcessManagerPrepareRequest) ProtoReflect() protoreflect.Message {
	mi := &file_angzarr_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessManagerPrepareRequest.ProtoReflect.Descriptor instead.
func (*ProcessManagerPrepareRequest) Descriptor() ([]byte, []int) {
	return file_angzarr_proto_rawDescGZIP(), []int{25}
}

func (x *ProcessManagerPrepareRequest) GetTrigger() *EventBook {
	if x != nil {
		return x.Trigger
	}
	return nil
}

func (x *ProcessManagerPrepareRequest) GetProcessState() *EventBook {
	if x != nil {
		return x.ProcessState
	}
	return nil
}

type ProcessManagerPrepareResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Destinations  []*Cover               `protobuf:"bytes,1,rep,name=destinations,proto3" json:"destinations,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessManagerPrepareResponse) Reset() {
	*x = ProcessManagerPrepareResponse{}
	mi := &file_angzarr_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessManagerPrepareResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessManagerPrepareResponse) ProtoMessage() {}

func (x *ProcessManagerPrepareResponse) ProtoReflect() protoreflect.Message {
	mi := &file_angzarr_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessManagerPrepareResponse.ProtoReflect.Descriptor instead.
func (*ProcessManagerPrepareResponse) Descriptor() ([]byte, []int) {
	return file_angzarr_proto_rawDescGZIP(), []int{26}
}

func (x *ProcessManagerPrepareResponse) GetDestinations() []*Cover {
	if x != nil {
		return x.Destinations
	}
	return nil
}

type ProcessManagerHandleRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Trigger       *EventBook             `protobuf:"bytes,1,opt,name=trigger,proto3" json:"trigger,omitempty"`
	ProcessState  *EventBook             `protobuf:"bytes,2,opt,name=process_state,json=processState,proto3" json:"process_state,omitempty"`
	Destinations  []*EventBook           `protobuf:"bytes,3,rep,name=destinations,proto3" json:"destinations,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessManagerHandleRequest) Reset() {
	*x = ProcessManagerHandleRequest{}
	mi := &file_angzarr_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessManagerHandleRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessManagerHandleRequest) ProtoMessage() {}

func (x *ProcessManagerHandleRequest) ProtoReflect() protoreflect.Message {
	mi := &file_angzarr_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessManagerHandleRequest.ProtoReflect.Descriptor instead.
func (*ProcessManagerHandleRequest) Descriptor() ([]byte, []int) {
	return file_angzarr_proto_rawDescGZIP(), []int{27}
}

func (x *ProcessManagerHandleRequest) GetTrigger() *EventBook {
	if x != nil {
		return x.Trigger
	}
	return nil
}

func (x *ProcessManagerHandleRequest) GetProcessState() *EventBook {
	if x != nil {
		return x.ProcessState
	}
	return nil
}

func (x *ProcessManagerHandleRequest) GetDestinations() []*EventBook {
	if x != nil {
		return x.Destinations
	}
	return nil
}

type ProcessManagerHandleResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Commands      []*CommandBook         `protobuf:"bytes,1,rep,name=commands,proto3" json:"commands,omitempty"`
	ProcessEvents *EventBook             `protobuf:"bytes,2,opt,name=process_events,json=processEvents,proto3" json:"process_events,omitempty"`
	// Set when the trigger was a rejection Notification; tells the gateway how
	// to treat the failed chain.
	Revocation    *RevocationResponse `protobuf:"bytes,3,opt,name=revocation,proto3" json:"revocation,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessManagerHandleResponse) Reset() {
	*x = ProcessManagerHandleResponse{}
	mi := &file_angzarr_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessManagerHandleResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessManagerHandleResponse) ProtoMessage() {}

func (x *ProcessManagerHandleResponse) ProtoReflect() protoreflect.Message {
	mi := &file_angzarr_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessManagerHandleResponse.ProtoReflect.Descriptor instead.
func (*ProcessManagerHandleResponse) Descriptor() ([]byte, []int) {
	return file_angzarr_proto_rawDescGZIP(), []int{28}
}

func (x *ProcessManagerHandleResponse) GetCommands() []*CommandBook {
	if x != nil {
		return x.Commands
	}
	return nil
}

func (x *ProcessManagerHandleResponse) GetProcessEvents() *EventBook {
	if x != nil {
		return x.ProcessEvents
	}
	return nil
}

func (x *ProcessManagerHandleResponse) GetRevocation() *RevocationResponse {
	if x != nil {
		return x.Revocation
	}
	return nil
}

type UpcastRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Pages         []*EventPage           `protobuf:"bytes,1,rep,name=pages,proto3" json:"pages,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpcastRequest) Reset() {
	*x = UpcastRequest{}
	mi := &file_angzarr_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpcastRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpcastRequest) ProtoMessage() {}

func (x *UpcastRequest) ProtoReflect() protoreflect.Message {
	mi := &file_angzarr_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpcastRequest.ProtoReflect.Descriptor instead.
func (*UpcastRequest) Descriptor() ([]byte, []int) {
	return file_angzarr_proto_rawDescGZIP(), []int{29}
}

func (x *UpcastRequest) GetPages() []*EventPage {
	if x != nil {
		return x.Pages
	}
	return nil
}

type UpcastResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Pages         []*EventPage           `protobuf:"bytes,1,rep,name=pages,proto3" json:"pages,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpcastResponse) Reset() {
	*x = UpcastResponse{}
	mi := &file_angzarr_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpcastResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpcastResponse) ProtoMessage() {}

func (x *UpcastResponse) ProtoReflect() protoreflect.Message {
	mi := &file_angzarr_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpcastResponse.ProtoReflect.Descriptor instead.
func (*UpcastResponse) Descriptor() ([]byte, []int) {
	return file_angzarr_proto_rawDescGZIP(), []int{30}
}

func (x *UpcastResponse) GetPages() []*EventPage {
	if x != nil {
		return x.Pages
	}
	return nil
}

// SequenceRange selects events by sequence, lower inclusive, optional upper
// inclusive.
type SequenceRange struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Lower         uint64                 `protobuf:"varint,1,opt,name=lower,proto3" json:"lower,omitempty"`
	Upper         *uint64                `protobuf:"varint,2,opt,name=upper,proto3,oneof" json:"upper,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SequenceRange) Reset() {
	*x = SequenceRange{}
	mi := &file_angzarr_proto_msgTypes[31]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SequenceRange) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SequenceRange) ProtoMessage() {}

func (x *SequenceRange) ProtoReflect() protoreflect.Message {
	mi := &file_angzarr_proto_msgTypes[31]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SequenceRange.ProtoReflect.Descriptor instead.
func (*SequenceRange) Descriptor() ([]byte, []int) {
	return file_angzarr_proto_rawDescGZIP(), []int{31}
}

func (x *SequenceRange) GetLower() uint64 {
	if x != nil {
		return x.Lower
	}
	return 0
}

func (x *SequenceRange) GetUpper() uint64 {
	if x != nil && x.Upper != nil {
		return *x.Upper
	}
	return 0
}

// TemporalQuery selects state as of a sequence or wall-clock instant.
type TemporalQuery struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Types that are valid to be assigned to PointInTime:
	//
	//	*TemporalQuery_AsOfSequence
	//	*TemporalQuery_AsOfTime
	PointInTime   isTemporalQuery_PointInTime `protobuf_oneof:"point_in_time"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TemporalQuery) Reset() {
	*x = TemporalQuery{}
	mi := &file_angzarr_proto_msgTypes[32]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TemporalQuery) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TemporalQuery) ProtoMessage() {}

func (x *TemporalQuery) ProtoReflect() protoreflect.Message {
	mi := &file_angzarr_proto_msgTypes[32]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TemporalQuery.ProtoReflect.Descriptor instead.
func (*TemporalQuery) Descriptor() ([]byte, []int) {
	return file_angzarr_proto_rawDescGZIP(), []int{32}
}

func (x *TemporalQuery) GetPointInTime() isTemporalQuery_PointInTime {
	if x != nil {
		return x.PointInTime
	}
	return nil
}

func (x *TemporalQuery) GetAsOfSequence() uint64 {
	if x != nil {
		if x, ok := x.PointInTime.(*TemporalQuery_AsOfSequence); ok {
			return x.AsOfSequence
		}
	}
	return 0
}

func (x *TemporalQuery) GetAsOfTime() *timestamppb.Timestamp {
	if x != nil {
		if x, ok := x.PointInTime.(*TemporalQuery_AsOfTime); ok {
			return x.AsOfTime
		}
	}
	return nil
}

type isTemporalQuery_PointInTime interface {
	isTemporalQuery_PointInTime()
}

type TemporalQuery_AsOfSequence struct {
	AsOfSequence uint64 `protobuf:"varint,1,opt,name=as_of_sequence,json=asOfSequence,proto3,oneof"`
}

type TemporalQuery_AsOfTime struct {
	AsOfTime *timestamppb.Timestamp `protobuf:"bytes,2,opt,name=as_of_time,json=asOfTime,proto3,oneof"`
}

func (*TemporalQuery_AsOfSequence) isTemporalQuery_PointInTime() {}

func (*TemporalQuery_AsOfTime) isTemporalQuery_PointInTime() {}

// Query addresses an aggregate's history through the gateway.
type Query struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	Cover *Cover                 `protobuf:"bytes,1,opt,name=cover,proto3" json:"cover,omitempty"`
	// Types that are valid to be assigned to Selection:
	//
	//	*Query_Range
	//	*Query_Temporal
	Selection     isQuery_Selection `protobuf_oneof:"selection"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Query) Reset() {
	*x = Query{}
	mi := &file_angzarr_proto_msgTypes[33]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Query) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Query) ProtoMessage() {}

func (x *Query) ProtoReflect() protoreflect.Message {
	mi := &file_angzarr_proto_msgTypes[33]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Query.ProtoReflect.Descriptor instead.
func (*Query) Descriptor() ([]byte, []int) {
	return file_angzarr_proto_rawDescGZIP(), []int{33}
}

func (x *Query) GetCover() *Cover {
	if x != nil {
		return x.Cover
	}
	return nil
}

func (x *Query) GetSelection() isQuery_Selection {
	if x != nil {
		return x.Selection
	}
	return nil
}

func (x *Query) GetRange() *SequenceRange {
	if x != nil {
		if x, ok := x.Selection.(*Query_Range); ok {
			return x.Range
		}
	}
	return nil
}

func (x *Query) GetTemporal() *TemporalQuery {
	if x != nil {
		if x, ok := x.Selection.(*Query_Temporal); ok {
			return x.Temporal
		}
	}
	return nil
}

type isQuery_Selection interface {
	isQuery_Selection()
}

type Query_Range struct {
	Range *SequenceRange `protobuf:"bytes,2,opt,name=range,proto3,oneof"`
}

type Query_Temporal struct {
	Temporal *TemporalQuery `protobuf:"bytes,3,opt,name=temporal,proto3,oneof"`
}

func (*Query_Range) isQuery_Selection() {}

func (*Query_Temporal) isQuery_Selection() {}

var File_angzarr_proto protoreflect.FileDescriptor

const file_angzarr_proto_rawDesc = "" +
	"\n" +
	"\rangzarr.proto\x12\aangzarr\x1a\x19google/protobuf/any.proto\x1a\x1fgoogle/protobuf/timestamp.proto\"\x1c\n" +
	"\x04UUID\x12\x14\n" +
	"\x05value\x18\x01 \x01(\fR\x05value\"F\n" +
	"\x10DomainDivergence\x12\x16\n" +
	"\x06domain\x18\x01 \x01(\tR\x06domain\x12\x1a\n" +
	"\bsequence\x18\x02 \x01(\x04R\bsequence\"Z\n" +
	"\aEdition\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12;\n" +
	"\vdivergences\x18\x02 \x03(\v2\x19.angzarr.DomainDivergenceR\vdivergences\"\x95\x01\n" +
	"\x05Cover\x12\x16\n" +
	"\x06domain\x18\x01 \x01(\tR\x06domain\x12!\n" +
	"\x04root\x18\x02 \x01(\v2\r.angzarr.UUIDR\x04root\x12%\n" +
	"\x0ecorrelation_id\x18\x03 \x01(\tR\rcorrelationId\x12*\n" +
	"\aedition\x18\x04 \x01(\v2\x10.angzarr.EditionR\aedition\"\xb0\x01\n" +
	"\tEventPage\x12\x1a\n" +
	"\bsequence\x18\x01 \x01(\x04R\bsequence\x12*\n" +
	"\x05event\x18\x02 \x01(\v2\x14.google.protobuf.AnyR\x05event\x129\n" +
	"\n" +
	"created_at\x18\x03 \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\x12 \n" +
	"\vsynchronous\x18\x04 \x01(\bR\vsynchronous\"\xba\x01\n" +
	"\vCommandPage\x12\x1a\n" +
	"\bsequence\x18\x01 \x01(\x04R\bsequence\x12.\n" +
	"\acommand\x18\x02 \x01(\v2\x14.google.protobuf.AnyR\acommand\x12=\n" +
	"\x0emerge_strategy\x18\x03 \x01(\x0e2\x16.angzarr.MergeStrategyR\rmergeStrategy\x12 \n" +
	"\vsynchronous\x18\x04 \x01(\bR\vsynchronous\"W\n" +
	"\bSnapshot\x12*\n" +
	"\x05state\x18\x01 \x01(\v2\x14.google.protobuf.AnyR\x05state\x12\x1f\n" +
	"\vat_sequence\x18\x02 \x01(\x04R\n" +
	"atSequence\"\xaf\x01\n" +
	"\tEventBook\x12$\n" +
	"\x05cover\x18\x01 \x01(\v2\x0e.angzarr.CoverR\x05cover\x12-\n" +
	"\bsnapshot\x18\x02 \x01(\v2\x11.angzarr.SnapshotR\bsnapshot\x12(\n" +
	"\x05pages\x18\x03 \x03(\v2\x12.angzarr.EventPageR\x05pages\x12#\n" +
	"\rnext_sequence\x18\x04 \x01(\x04R\fnextSequence\"_\n" +
	"\vCommandBook\x12$\n" +
	"\x05cover\x18\x01 \x01(\v2\x0e.angzarr.CoverR\x05cover\x12*\n" +
	"\x05pages\x18\x02 \x03(\v2\x14.angzarr.CommandPageR\x05pages\"o\n" +
	"\x11ContextualCommand\x12.\n" +
	"\acommand\x18\x01 \x01(\v2\x14.angzarr.CommandBookR\acommand\x12*\n" +
	"\x06events\x18\x02 \x01(\v2\x12.angzarr.EventBookR\x06events\"\xce\x01\n" +
	"\x12RevocationResponse\x124\n" +
	"\x16emit_system_revocation\x18\x01 \x01(\bR\x14emitSystemRevocation\x128\n" +
	"\x19send_to_dead_letter_queue\x18\x02 \x01(\bR\x15sendToDeadLetterQueue\x12\x1a\n" +
	"\bescalate\x18\x03 \x01(\bR\bescalate\x12\x14\n" +
	"\x05abort\x18\x04 \x01(\bR\x05abort\x12\x16\n" +
	"\x06reason\x18\x05 \x01(\tR\x06reason\"\x89\x01\n" +
	"\x10BusinessResponse\x12,\n" +
	"\x06events\x18\x01 \x01(\v2\x12.angzarr.EventBookH\x00R\x06events\x12=\n" +
	"\n" +
	"revocation\x18\x02 \x01(\v2\x1b.angzarr.RevocationResponseH\x00R\n" +
	"revocationB\b\n" +
	"\x06result\"=\n" +
	"\x0fCommandResponse\x12*\n" +
	"\x06events\x18\x01 \x01(\v2\x12.angzarr.EventBookR\x06events\"\xa2\x01\n" +
	"\n" +
	"Projection\x12$\n" +
	"\x05cover\x18\x01 \x01(\v2\x0e.angzarr.CoverR\x05cover\x12\x1c\n" +
	"\tprojector\x18\x02 \x01(\tR\tprojector\x12\x1a\n" +
	"\bsequence\x18\x03 \x01(\x04R\bsequence\x124\n" +
	"\n" +
	"projection\x18\x04 \x01(\v2\x14.google.protobuf.AnyR\n" +
	"projection\"6\n" +
	"\x06Target\x12\x16\n" +
	"\x06domain\x18\x01 \x01(\tR\x06domain\x12\x14\n" +
	"\x05types\x18\x02 \x03(\tR\x05types\"\xa4\x01\n" +
	"\x13ComponentDescriptor\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12%\n" +
	"\x0ecomponent_type\x18\x02 \x01(\tR\rcomponentType\x12'\n" +
	"\x06inputs\x18\x03 \x03(\v2\x0f.angzarr.TargetR\x06inputs\x12)\n" +
	"\aoutputs\x18\x04 \x03(\v2\x0f.angzarr.TargetR\aoutputs\"\x16\n" +
	"\x14GetDescriptorRequest\">\n" +
	"\fNotification\x12.\n" +
	"\apayload\x18\x01 \x01(\v2\x14.google.protobuf.AnyR\apayload\"\xb4\x02\n" +
	"\x15RejectionNotification\x12\x1f\n" +
	"\vissuer_name\x18\x01 \x01(\tR\n" +
	"issuerName\x12\x1f\n" +
	"\vissuer_type\x18\x02 \x01(\tR\n" +
	"issuerType\x122\n" +
	"\x15source_event_sequence\x18\x03 \x01(\x04R\x13sourceEventSequence\x12)\n" +
	"\x10rejection_reason\x18\x04 \x01(\tR\x0frejectionReason\x12?\n" +
	"\x10rejected_command\x18\x05 \x01(\v2\x14.angzarr.CommandBookR\x0frejectedCommand\x129\n" +
	"\x10source_aggregate\x18\x06 \x01(\v2\x0e.angzarr.CoverR\x0fsourceAggregate\"w\n" +
	"\x15PrerequisiteCompleted\x12\"\n" +
	"\fprerequisite\x18\x01 \x01(\tR\fprerequisite\x12\x1c\n" +
	"\tcompleted\x18\x02 \x03(\tR\tcompleted\x12\x1c\n" +
	"\tremaining\x18\x03 \x03(\tR\tremaining\".\n" +
	"\x0eDispatchIssued\x12\x1c\n" +
	"\tcompleted\x18\x01 \x03(\tR\tcompleted\"@\n" +
	"\x12SagaPrepareRequest\x12*\n" +
	"\x06source\x18\x01 \x01(\v2\x12.angzarr.EventBookR\x06source\"I\n" +
	"\x13SagaPrepareResponse\x122\n" +
	"\fdestinations\x18\x01 \x03(\v2\x0e.angzarr.CoverR\fdestinations\"x\n" +
	"\x12SagaExecuteRequest\x12*\n" +
	"\x06source\x18\x01 \x01(\v2\x12.angzarr.EventBookR\x06source\x126\n" +
	"\fdestinations\x18\x02 \x03(\v2\x12.angzarr.EventBookR\fdestinations\"@\n" +
	"\fSagaResponse\x120\n" +
	"\bcommands\x18\x01 \x03(\v2\x14.angzarr.CommandBookR\bcommands\"\x85\x01\n" +
	"\x1cProcessManagerPrepareRequest\x12,\n" +
	"\atrigger\x18\x01 \x01(\v2\x12.angzarr.EventBookR\atrigger\x127\n" +
	"\rprocess_state\x18\x02 \x01(\v2\x12.angzarr.EventBookR\fprocessState\"S\n" +
	"\x1dProcessManagerPrepareResponse\x122\n" +
	"\fdestinations\x18\x01 \x03(\v2\x0e.angzarr.CoverR\fdestinations\"\xbc\x01\n" +
	"\x1bProcessManagerHandleRequest\x12,\n" +
	"\atrigger\x18\x01 \x01(\v2\x12.angzarr.EventBookR\atrigger\x127\n" +
	"\rprocess_state\x18\x02 \x01(\v2\x12.angzarr.EventBookR\fprocessState\x126\n" +
	"\fdestinations\x18\x03 \x03(\v2\x12.angzarr.EventBookR\fdestinations\"\xc8\x01\n" +
	"\x1cProcessManagerHandleResponse\x120\n" +
	"\bcommands\x18\x01 \x03(\v2\x14.angzarr.CommandBookR\bcommands\x129\n" +
	"\x0eprocess_events\x18\x02 \x01(\v2\x12.angzarr.EventBookR\rprocessEvents\x12;\n" +
	"\n" +
	"revocation\x18\x03 \x01(\v2\x1b.angzarr.RevocationResponseR\n" +
	"revocation\"9\n" +
	"\rUpcastRequest\x12(\n" +
	"\x05pages\x18\x01 \x03(\v2\x12.angzarr.EventPageR\x05pages\":\n" +
	"\x0eUpcastResponse\x12(\n" +
	"\x05pages\x18\x01 \x03(\v2\x12.angzarr.EventPageR\x05pages\"J\n" +
	"\rSequenceRange\x12\x14\n" +
	"\x05lower\x18\x01 \x01(\x04R\x05lower\x12\x19\n" +
	"\x05upper\x18\x02 \x01(\x04H\x00R\x05upper\x88\x01\x01B\b\n" +
	"\x06_upper\"\x84\x01\n" +
	"\rTemporalQuery\x12&\n" +
	"\x0eas_of_sequence\x18\x01 \x01(\x04H\x00R\fasOfSequence\x12:\n" +
	"\n" +
	"as_of_time\x18\x02 \x01(\v2\x1a.google.protobuf.TimestampH\x00R\basOfTimeB\x0f\n" +
	"\rpoint_in_time\"\xa0\x01\n" +
	"\x05Query\x12$\n" +
	"\x05cover\x18\x01 \x01(\v2\x0e.angzarr.CoverR\x05cover\x12.\n" +
	"\x05range\x18\x02 \x01(\v2\x16.angzarr.SequenceRangeH\x00R\x05range\x124\n" +
	"\btemporal\x18\x03 \x01(\v2\x16.angzarr.TemporalQueryH\x00R\btemporalB\v\n" +
	"\tselection*S\n" +
	"\rMergeStrategy\x12\x15\n" +
	"\x11MERGE_UNSPECIFIED\x10\x00\x12\x14\n" +
	"\x10MERGE_SEQUENTIAL\x10\x01\x12\x15\n" +
	"\x11MERGE_COMMUTATIVE\x10\x022\xae\x02\n" +
	"\x10AggregateService\x12L\n" +
	"\rGetDescriptor\x12\x1d.angzarr.GetDescriptorRequest\x1a\x1c.angzarr.ComponentDescriptor\x12?\n" +
	"\x06Handle\x12\x1a.angzarr.ContextualCommand\x1a\x19.angzarr.BusinessResponse\x12C\n" +
	"\n" +
	"HandleSync\x12\x1a.angzarr.ContextualCommand\x1a\x19.angzarr.BusinessResponse\x12F\n" +
	"\x10HandleRevocation\x12\x15.angzarr.Notification\x1a\x1b.angzarr.RevocationResponse2\xe0\x01\n" +
	"\vSagaService\x12L\n" +
	"\rGetDescriptor\x12\x1d.angzarr.GetDescriptorRequest\x1a\x1c.angzarr.ComponentDescriptor\x12D\n" +
	"\aPrepare\x12\x1b.angzarr.SagaPrepareRequest\x1a\x1c.angzarr.SagaPrepareResponse\x12=\n" +
	"\aExecute\x12\x1b.angzarr.SagaExecuteRequest\x1a\x15.angzarr.SagaResponse2\x96\x02\n" +
	"\x15ProcessManagerService\x12L\n" +
	"\rGetDescriptor\x12\x1d.angzarr.GetDescriptorRequest\x1a\x1c.angzarr.ComponentDescriptor\x12X\n" +
	"\aPrepare\x12%.angzarr.ProcessManagerPrepareRequest\x1a&.angzarr.ProcessManagerPrepareResponse\x12U\n" +
	"\x06Handle\x12$.angzarr.ProcessManagerHandleRequest\x1a%.angzarr.ProcessManagerHandleResponse2\xd1\x01\n" +
	"\x10ProjectorService\x12L\n" +
	"\rGetDescriptor\x12\x1d.angzarr.GetDescriptorRequest\x1a\x1c.angzarr.ComponentDescriptor\x121\n" +
	"\x06Handle\x12\x12.angzarr.EventBook\x1a\x13.angzarr.Projection\x12<\n" +
	"\x11HandleSpeculative\x12\x12.angzarr.EventBook\x1a\x13.angzarr.Projection2\x9a\x01\n" +
	"\x0fUpcasterService\x12L\n" +
	"\rGetDescriptor\x12\x1d.angzarr.GetDescriptorRequest\x1a\x1c.angzarr.ComponentDescriptor\x129\n" +
	"\x06Upcast\x12\x16.angzarr.UpcastRequest\x1a\x17.angzarr.UpcastResponse2\x8f\x01\n" +
	"\x15CommandGatewayService\x128\n" +
	"\x06Handle\x12\x14.angzarr.CommandBook\x1a\x18.angzarr.CommandResponse\x12<\n" +
	"\n" +
	"HandleSync\x12\x14.angzarr.CommandBook\x1a\x18.angzarr.CommandResponse2z\n" +
	"\x11EventQueryService\x122\n" +
	"\fGetEventBook\x12\x0e.angzarr.Query\x1a\x12.angzarr.EventBook\x121\n" +
	"\tGetEvents\x12\x0e.angzarr.Query\x1a\x12.angzarr.EventBook0\x01B0Z.github.com/angzarr-io/angzarr-go/proto/angzarrb\x06proto3"

var (
	file_angzarr_proto_rawDescOnce sync.Once
	file_angzarr_proto_rawDescData []byte
)

func file_angzarr_proto_rawDescGZIP() []byte {
	file_angzarr_proto_rawDescOnce.Do(func() {
		file_angzarr_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_angzarr_proto_rawDesc), len(file_angzarr_proto_rawDesc)))
	})
	return file_angzarr_proto_rawDescData
}

var file_angzarr_proto_enumTypes = make([]protoimpl.EnumInfo, 1)
var file_angzarr_proto_msgTypes = make([]protoimpl.MessageInfo, 34)
var file_angzarr_proto_goTypes = []any{
	(MergeStrategy)(0),                    // 0: angzarr.MergeStrategy
	(*UUID)(nil),                          // 1: angzarr.UUID
	(*DomainDivergence)(nil),              // 2: angzarr.DomainDivergence
	(*Edition)(nil),                       // 3: angzarr.Edition
	(*Cover)(nil),                         // 4: angzarr.Cover
	(*EventPage)(nil),                     // 5: angzarr.EventPage
	(*CommandPage)(nil),                   // 6: angzarr.CommandPage
	(*Snapshot)(nil),                      // 7: angzarr.Snapshot
	(*EventBook)(nil),                     // 8: angzarr.EventBook
	(*CommandBook)(nil),                   // 9: angzarr.CommandBook
	(*ContextualCommand)(nil),             // 10: angzarr.ContextualCommand
	(*RevocationResponse)(nil),            // 11: angzarr.RevocationResponse
	(*BusinessResponse)(nil),              // 12: angzarr.BusinessResponse
	(*CommandResponse)(nil),               // 13: angzarr.CommandResponse
	(*Projection)(nil),                    // 14: angzarr.Projection
	(*Target)(nil),                        // 15: angzarr.Target
	(*ComponentDescriptor)(nil),           // 16: angzarr.ComponentDescriptor
	(*GetDescriptorRequest)(nil),          // 17: angzarr.GetDescriptorRequest
	(*Notification)(nil),                  // 18: angzarr.Notification
	(*RejectionNotification)(nil),         // 19: angzarr.RejectionNotification
	(*PrerequisiteCompleted)(nil),         // 20: angzarr.PrerequisiteCompleted
	(*DispatchIssued)(nil),                // 21: angzarr.DispatchIssued
	(*SagaPrepareRequest)(nil),            // 22: angzarr.SagaPrepareRequest
	(*SagaPrepareResponse)(nil),           // 23: angzarr.SagaPrepareResponse
	(*SagaExecuteRequest)(nil),            // 24: angzarr.SagaExecuteRequest
	(*SagaResponse)(nil),                  // 25: angzarr.SagaResponse
	(*ProcessManagerPrepareRequest)(nil),  // 26: angzarr.ProcessManagerPrepareRequest
	(*ProcessManagerPrepareResponse)(nil), // 27: angzarr.ProcessManagerPrepareResponse
	(*ProcessManagerHandleRequest)(nil),   // 28: angzarr.ProcessManagerHandleRequest
	(*ProcessManagerHandleResponse)(nil),  // 29: angzarr.ProcessManagerHandleResponse
	(*UpcastRequest)(nil),                 // 30: angzarr.UpcastRequest
	(*UpcastResponse)(nil),                // 31: angzarr.UpcastResponse
	(*SequenceRange)(nil),                 // 32: angzarr.SequenceRange
	(*TemporalQuery)(nil),                 // 33: angzarr.TemporalQuery
	(*Query)(nil),                         // 34: angzarr.Query
	(*anypb.Any)(nil),                     // 35: google.protobuf.Any
	(*timestamppb.Timestamp)(nil),         // 36: google.protobuf.Timestamp
}
var file_angzarr_proto_depIdxs = []int32{
	2,  // 0: angzarr.Edition.divergences:type_name -> angzarr.DomainDivergence
	1,  // 1: angzarr.Cover.root:type_name -> angzarr.UUID
	3,  // 2: angzarr.Cover.edition:type_name -> angzarr.Edition
	35, // 3: angzarr.EventPage.event:type_name -> google.protobuf.Any
	36, // 4: angzarr.EventPage.created_at:type_name -> google.protobuf.Timestamp
	35, // 5: angzarr.CommandPage.command:type_name -> google.protobuf.Any
	0,  // 6: angzarr.CommandPage.merge_strategy:type_name -> angzarr.MergeStrategy
	35, // 7: angzarr.Snapshot.state:type_name -> google.protobuf.Any
	4,  // 8: angzarr.EventBook.cover:type_name -> angzarr.Cover
	7,  // 9: angzarr.EventBook.snapshot:type_name -> angzarr.Snapshot
	5,  // 10: angzarr.EventBook.pages:type_name -> angzarr.EventPage
	4,  // 11: angzarr.CommandBook.cover:type_name -> angzarr.Cover
	6,  // 12: angzarr.CommandBook.pages:type_name -> angzarr.CommandPage
	9,  // 13: angzarr.ContextualCommand.command:type_name -> angzarr.CommandBook
	8,  // 14: angzarr.ContextualCommand.events:type_name -> angzarr.EventBook
	8,  // 15: angzarr.BusinessResponse.events:type_name -> angzarr.EventBook
	11, // 16: angzarr.BusinessResponse.revocation:type_name -> angzarr.RevocationResponse
	8,  // 17: angzarr.CommandResponse.events:type_name -> angzarr.EventBook
	4,  // 18: angzarr.Projection.cover:type_name -> angzarr.Cover
	35, // 19: angzarr.Projection.projection:type_name -> google.protobuf.Any
	15, // 20: angzarr.ComponentDescriptor.inputs:type_name -> angzarr.Target
	15, // 21: angzarr.ComponentDescriptor.outputs:type_name -> angzarr.Target
	35, // 22: angzarr.Notification.payload:type_name -> google.protobuf.Any
	9,  // 23: angzarr.RejectionNotification.rejected_command:type_name -> angzarr.CommandBook
	4,  // 24: angzarr.RejectionNotification.source_aggregate:type_name -> angzarr.Cover
	8,  // 25: angzarr.SagaPrepareRequest.source:type_name -> angzarr.EventBook
	4,  // 26: angzarr.SagaPrepareResponse.destinations:type_name -> angzarr.Cover
	8,  // 27: angzarr.SagaExecuteRequest.source:type_name -> angzarr.EventBook
	8,  // 28: angzarr.SagaExecuteRequest.destinations:type_name -> angzarr.EventBook
	9,  // 29: angzarr.SagaResponse.commands:type_name -> angzarr.CommandBook
	8,  // 30: angzarr.ProcessManagerPrepareRequest.trigger:type_name -> angzarr.EventBook
	8,  // 31: angzarr.ProcessManagerPrepareRequest.process_state:type_name -> angzarr.EventBook
	4,  // 32: angzarr.ProcessManagerPrepareResponse.destinations:type_name -> angzarr.Cover
	8,  // 33: angzarr.ProcessManagerHandleRequest.trigger:type_name -> angzarr.EventBook
	8,  // 34: angzarr.ProcessManagerHandleRequest.process_state:type_name -> angzarr.EventBook
	8,  // 35: angzarr.ProcessManagerHandleRequest.destinations:type_name -> angzarr.EventBook
	9,  // 36: angzarr.ProcessManagerHandleResponse.commands:type_name -> angzarr.CommandBook
	8,  // 37: angzarr.ProcessManagerHandleResponse.process_events:type_name -> angzarr.EventBook
	11, // 38: angzarr.ProcessManagerHandleResponse.revocation:type_name -> angzarr.RevocationResponse
	5,  // 39: angzarr.UpcastRequest.pages:type_name -> angzarr.EventPage
	5,  // 40: angzarr.UpcastResponse.pages:type_name -> angzarr.EventPage
	36, // 41: angzarr.TemporalQuery.as_of_time:type_name -> google.protobuf.Timestamp
	4,  // 42: angzarr.Query.cover:type_name -> angzarr.Cover
	32, // 43: angzarr.Query.range:type_name -> angzarr.SequenceRange
	33, // 44: angzarr.Query.temporal:type_name -> angzarr.TemporalQuery
	17, // 45: angzarr.AggregateService.GetDescriptor:input_type -> angzarr.GetDescriptorRequest
	10, // 46: angzarr.AggregateService.Handle:input_type -> angzarr.ContextualCommand
	10, // 47: angzarr.AggregateService.HandleSync:input_type -> angzarr.ContextualCommand
	18, // 48: angzarr.AggregateService.HandleRevocation:input_type -> angzarr.Notification
	17, // 49: angzarr.SagaService.GetDescriptor:input_type -> angzarr.GetDescriptorRequest
	22, // 50: angzarr.SagaService.Prepare:input_type -> angzarr.SagaPrepareRequest
	24, // 51: angzarr.SagaService.Execute:input_type -> angzarr.SagaExecuteRequest
	17, // 52: angzarr.ProcessManagerService.GetDescriptor:input_type -> angzarr.GetDescriptorRequest
	26, // 53: angzarr.ProcessManagerService.Prepare:input_type -> angzarr.ProcessManagerPrepareRequest
	28, // 54: angzarr.ProcessManagerService.Handle:input_type -> angzarr.ProcessManagerHandleRequest
	17, // 55: angzarr.ProjectorService.GetDescriptor:input_type -> angzarr.GetDescriptorRequest
	8,  // 56: angzarr.ProjectorService.Handle:input_type -> angzarr.EventBook
	8,  // 57: angzarr.ProjectorService.HandleSpeculative:input_type -> angzarr.EventBook
	17, // 58: angzarr.UpcasterService.GetDescriptor:input_type -> angzarr.GetDescriptorRequest
	30, // 59: angzarr.UpcasterService.Upcast:input_type -> angzarr.UpcastRequest
	9,  // 60: angzarr.CommandGatewayService.Handle:input_type -> angzarr.CommandBook
	9,  // 61: angzarr.CommandGatewayService.HandleSync:input_type -> angzarr.CommandBook
	34, // 62: angzarr.EventQueryService.GetEventBook:input_type -> angzarr.Query
	34, // 63: angzarr.EventQueryService.GetEvents:input_type -> angzarr.Query
	16, // 64: angzarr.AggregateService.GetDescriptor:output_type -> angzarr.ComponentDescriptor
	12, // 65: angzarr.AggregateService.Handle:output_type -> angzarr.BusinessResponse
	12, // 66: angzarr.AggregateService.HandleSync:output_type -> angzarr.BusinessResponse
	11, // 67: angzarr.AggregateService.HandleRevocation:output_type -> angzarr.RevocationResponse
	16, // 68: angzarr.SagaService.GetDescriptor:output_type -> angzarr.ComponentDescriptor
	23, // 69: angzarr.SagaService.Prepare:output_type -> angzarr.SagaPrepareResponse
	25, // 70: angzarr.SagaService.Execute:output_type -> angzarr.SagaResponse
	16, // 71: angzarr.ProcessManagerService.GetDescriptor:output_type -> angzarr.ComponentDescriptor
	27, // 72: angzarr.ProcessManagerService.Prepare:output_type -> angzarr.ProcessManagerPrepareResponse
	29, // 73: angzarr.ProcessManagerService.Handle:output_type -> angzarr.ProcessManagerHandleResponse
	16, // 74: angzarr.ProjectorService.GetDescriptor:output_type -> angzarr.ComponentDescriptor
	14, // 75: angzarr.ProjectorService.Handle:output_type -> angzarr.Projection
	14, // 76: angzarr.ProjectorService.HandleSpeculative:output_type -> angzarr.Projection
	16, // 77: angzarr.UpcasterService.GetDescriptor:output_type -> angzarr.ComponentDescriptor
	31, // 78: angzarr.UpcasterService.Upcast:output_type -> angzarr.UpcastResponse
	13, // 79: angzarr.CommandGatewayService.Handle:output_type -> angzarr.CommandResponse
	13, // 80: angzarr.CommandGatewayService.HandleSync:output_type -> angzarr.CommandResponse
	8,  // 81: angzarr.EventQueryService.GetEventBook:output_type -> angzarr.EventBook
	8,  // 82: angzarr.EventQueryService.GetEvents:output_type -> angzarr.EventBook
	64, // [64:83] is the sub-list for method output_type
	45, // [45:64] is the sub-list for method input_type
	45, // [45:45] is the sub-list for extension type_name
	45, // [45:45] is the sub-list for extension extendee
	0,  // [0:45] is the sub-list for field type_name
}

func init() { file_angzarr_proto_init() }
func file_angzarr_proto_init() {
	if File_angzarr_proto != nil {
		return
	}
	file_angzarr_proto_msgTypes[11].OneofWrappers = []any{
		(*BusinessResponse_Events)(nil),
		(*BusinessResponse_Revocation)(nil),
	}
	file_angzarr_proto_msgTypes[31].OneofWrappers = []any{}
	file_angzarr_proto_msgTypes[32].OneofWrappers = []any{
		(*TemporalQuery_AsOfSequence)(nil),
		(*TemporalQuery_AsOfTime)(nil),
	}
	file_angzarr_proto_msgTypes[33].OneofWrappers = []any{
		(*Query_Range)(nil),
		(*Query_Temporal)(nil),
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_angzarr_proto_rawDesc), len(file_angzarr_proto_rawDesc)),
			NumEnums:      1,
			NumMessages:   34,
			NumExtensions: 0,
			NumServices:   7,
		},
		GoTypes:           file_angzarr_proto_goTypes,
		DependencyIndexes: file_angzarr_proto_depIdxs,
		EnumInfos:         file_angzarr_proto_enumTypes,
		MessageInfos:      file_angzarr_proto_msgTypes,
	}.Build()
	File_angzarr_proto = out.File
	file_angzarr_proto_goTypes = nil
	file_angzarr_proto_depIdxs = nil
}
