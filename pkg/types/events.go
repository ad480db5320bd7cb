package types

import (
	"encoding/json"
	"time"
)

type EntityCreated struct {
	DeviceID  string    `json:"deviceID"`
	HomeID    string    `json:"homeID"`
	UserID    string    `json:"userID"`
	AppCode   string    `json:"appCode,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *EntityCreated) ContentType() string {
	return "application/json"
}
func (e *EntityCreated) TopicName() string {
	return "entities.entityCreated"
}
func (e *EntityCreated) Body() []byte {
	b, _ := json.Marshal(e)
	return b
}

type EntityShared struct {
	DeviceIDs []string  `json:"deviceIDs"`
	HomeID    string    `json:"homeID"`
	MemberID  string    `json:"memberID"`
	AppCode   string    `json:"appCode,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *EntityShared) ContentType() string {
	return "application/json"
}
func (e *EntityShared) TopicName() string {
	return "entities.entityShared"
}
func (e *EntityShared) Body() []byte {
	b, _ := json.Marshal(e)
	return b
}

type EntityUnshared struct {
	DeviceIDs []string  `json:"deviceIDs"`
	HomeID    string    `json:"homeID"`
	MemberID  string    `json:"memberID"`
	AppCode   string    `json:"appCode,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *EntityUnshared) ContentType() string {
	return "application/json"
}
func (e *EntityUnshared) TopicName() string {
	return "entities.entityUnshared"
}
func (e *EntityUnshared) Body() []byte {
	b, _ := json.Marshal(e)
	return b
}

type EntityRemoved struct {
	DeviceID  string    `json:"deviceID"`
	HomeID    string    `json:"homeID"`
	UserIDs   []string  `json:"userIDs"`
	AppCode   string    `json:"appCode,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *EntityRemoved) ContentType() string {
	return "application/json"
}
func (e *EntityRemoved) TopicName() string {
	return "entities.entityRemoved"
}
func (e *EntityRemoved) Body() []byte {
	b, _ := json.Marshal(e)
	return b
}

type HomeRemoved struct {
	HomeID    string    `json:"homeID"`
	UserIDs   []string  `json:"userIDs"`
	AppCode   string    `json:"appCode,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *HomeRemoved) ContentType() string {
	return "application/json"
}
func (e *HomeRemoved) TopicName() string {
	return "homes.homeRemoved"
}
func (e *HomeRemoved) Body() []byte {
	b, _ := json.Marshal(e)
	return b
}

type StatisticsDrift struct {
	HomeID             string    `json:"homeID"`
	UserID             string    `json:"userID"`
	AppCode            string    `json:"appCode,omitempty"`
	StoredEntities     int64     `json:"storedEntities"`
	CountedEntities    int64     `json:"countedEntities"`
	StoredControllers  int64     `json:"storedControllers"`
	CountedControllers int64     `json:"countedControllers"`
	Timestamp          time.Time `json:"timestamp"`
}

func (e *StatisticsDrift) ContentType() string {
	return "application/json"
}
func (e *StatisticsDrift) TopicName() string {
	return "statistics.driftDetected"
}
func (e *StatisticsDrift) Body() []byte {
	b, _ := json.Marshal(e)
	return b
}
