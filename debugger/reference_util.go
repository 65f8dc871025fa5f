package debugger

import (
	"encoding/json"
	"fmt"
	"strconv"
	"sync"

	"github.com/sirupsen/logrus"
)

const (
	// scopeReferenceStart 栈帧作用域引用从这里开始
	scopeReferenceStart = 1000
	// variableReferenceStart 变量引用从这里开始
	variableReferenceStart = 1100
)

// ReferenceUtil dap变量引用工具类
// 程序每次停止时需要Reset，引用只在一次停止中有效
type ReferenceUtil struct {
	nextRef       int
	mutex         sync.RWMutex
	refInt2Struct map[int]string
	refStruct2Int map[string]int
	variables     map[int]*Variable
}

// ReferenceStruct 引用对应的变量路径
type ReferenceStruct struct {
	FrameId      int    `json:"frameId"`
	VariableName string `json:"variableName"`
	FieldPath    string `json:"fieldPath,omitempty"`
}

// NewStructReferenceStruct 创建栈帧中变量的引用结构体
func NewStructReferenceStruct(frameId int, variableName string) *ReferenceStruct {
	return &ReferenceStruct{
		FrameId:      frameId,
		VariableName: variableName,
	}
}

func NewReferenceUtil() *ReferenceUtil {
	r := &ReferenceUtil{}
	r.Reset()
	return r
}

// Reset 清空所有变量引用
func (r *ReferenceUtil) Reset() {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.nextRef = variableReferenceStart
	r.refInt2Struct = map[int]string{}
	r.refStruct2Int = map[string]int{}
	r.variables = map[int]*Variable{}
}

// GetScopesReference 根据栈帧获取ScopeId
func (r *ReferenceUtil) GetScopesReference(frameId int) int {
	return scopeReferenceStart + frameId
}

// CheckIsScopeReference 判断是否是Scope引用
func (r *ReferenceUtil) CheckIsScopeReference(reference int) bool {
	return reference >= scopeReferenceStart && reference < variableReferenceStart
}

// GetFrameIDByScopeReference 获取栈帧id
func (r *ReferenceUtil) GetFrameIDByScopeReference(reference int) int {
	return reference - scopeReferenceStart
}

// ParseVariableReference 解析引用，返回引用路径以及对应的变量
func (r *ReferenceUtil) ParseVariableReference(reference int) (*ReferenceStruct, *Variable, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	refStr, ok := r.refInt2Struct[reference]
	if !ok {
		return nil, nil, fmt.Errorf("reference %d not found", reference)
	}
	refStruct, err := r.parseReference(refStr)
	if err != nil {
		return nil, nil, err
	}
	return refStruct, r.variables[reference], nil
}

// CreateVariableReference 为有成员的变量创建引用，同一个路径返回同一个引用
func (r *ReferenceUtil) CreateVariableReference(refStruct *ReferenceStruct, variable *Variable) (int, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	strRef, err := r.convertReference(refStruct)
	if err != nil {
		logrus.Errorf("[ReferenceUtil] convert reference %v fail, err = %v", refStruct, err)
		return 0, err
	}
	// 如果引用已经存在，直接返回
	if intRef, ok := r.refStruct2Int[strRef]; ok {
		r.variables[intRef] = variable
		return intRef, nil
	}
	intRef := r.nextRef
	r.nextRef++
	r.refStruct2Int[strRef] = intRef
	r.refInt2Struct[intRef] = strRef
	r.variables[intRef] = variable
	return intRef, nil
}

func (r *ReferenceUtil) parseReference(reference string) (*ReferenceStruct, error) {
	answer := &ReferenceStruct{}
	err := json.Unmarshal([]byte(reference), answer)
	if err != nil {
		return nil, err
	}
	return answer, nil
}

// convertReference 把refStruct结构体转成引用字符串
func (r *ReferenceUtil) convertReference(refStruct *ReferenceStruct) (string, error) {
	answer, err := json.Marshal(refStruct)
	return string(answer), err
}

// GetFieldReferenceStruct 成员变量的引用结构体，数组元素使用[i]，其他成员使用.name
func GetFieldReferenceStruct(refStruct *ReferenceStruct, fieldName string) *ReferenceStruct {
	newRef := &ReferenceStruct{
		FrameId:      refStruct.FrameId,
		VariableName: refStruct.VariableName,
	}
	if index, ok := elementIndex(fieldName); ok {
		newRef.FieldPath = fmt.Sprintf("%s[%s]", refStruct.FieldPath, index)
	} else {
		newRef.FieldPath = fmt.Sprintf("%s.%s", refStruct.FieldPath, fieldName)
	}
	return newRef
}

// elementIndex 成员名称是数字或者[数字]时返回下标
func elementIndex(fieldName string) (string, bool) {
	if len(fieldName) > 2 && fieldName[0] == '[' && fieldName[len(fieldName)-1] == ']' {
		fieldName = fieldName[1 : len(fieldName)-1]
	}
	_, err := strconv.Atoi(fieldName)
	return fieldName, err == nil
}
