package gdb_debugger

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/fansqz/gdbmi-console/debugger"
	"github.com/fansqz/gdbmi-console/debugger/gdbmi"
	"github.com/fansqz/gdbmi-console/utils"
)

var addressRegexp = regexp.MustCompile(`^0x[0-9a-fA-F]+$`)

// GDBOutputUtil 处理gdb输出的工具
type GDBOutputUtil struct {
}

func NewGDBOutputUtil() *GDBOutputUtil {
	return &GDBOutputUtil{}
}

// ParseAddBreakpointOutput 解析添加断点输出，返回断点编号
// ^done,bkpt={number="1",type="breakpoint",disp="keep",enabled="y",addr="0x0000000000001139",
// func="main",file="main.c",fullname="/tmp/main.c",line="3",thread-groups=["i1"],times="0"}
func (g *GDBOutputUtil) ParseAddBreakpointOutput(record *gdbmi.Record) (bool, string) {
	if record.Class != "done" {
		return false, ""
	}
	bkpt := record.Payload().Lookup("bkpt")
	if bkpt == nil {
		return false, ""
	}
	number := bkpt.StringOf("number")
	return number != "", number
}

// ParseThreadListIdsOutput 解析 -thread-list-ids 的输出
// ^done,thread-ids={thread-id="3",thread-id="1"},current-thread-id="1",number-of-threads="2"
func (g *GDBOutputUtil) ParseThreadListIdsOutput(record *gdbmi.Record) ([]int, int) {
	payload := record.Payload()
	var ids []int
	for _, item := range payload.ListOf("thread-ids") {
		id, err := strconv.Atoi(item.String())
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, payload.IntOf("current-thread-id")
}

// ParseFileListOutput 解析 -file-list-exec-source-files 的输出，优先使用文件完整路径并去重
// ^done,files=[{file="main.c",fullname="/tmp/main.c"},{file="/usr/include/stdio.h"}]
func (g *GDBOutputUtil) ParseFileListOutput(record *gdbmi.Record) []string {
	var files []string
	for _, item := range record.Payload().ListOf("files") {
		file := item.StringOf("fullname")
		if file == "" {
			file = item.StringOf("file")
		}
		if file != "" {
			files = append(files, file)
		}
	}
	return utils.Distinct(files)
}

// ParseVarCreate 解析变量创建的输出
// ^done,name="var1",numchild="2",value="{...}",type="struct Item",thread-id="1",has_more="0"
func (g *GDBOutputUtil) ParseVarCreate(record *gdbmi.Record, expression string) (*debugger.Variable, bool) {
	if record.Class != "done" {
		return nil, false
	}
	payload := record.Payload()
	variable := debugger.NewVariable(expression, payload.StringOf("value"), payload.StringOf("type"))
	variable.BackendName = payload.StringOf("name")
	return variable, variable.BackendName != ""
}

// CheckHasChildren 变量对象是否有子元素
func (g *GDBOutputUtil) CheckHasChildren(record *gdbmi.Record) bool {
	payload := record.Payload()
	return payload.IntOf("numchild") != 0 || payload.IntOf("has_more") != 0
}

// ParseDataEvaluateOutput 解析 -data-evaluate-expression 的输出 ^done,value="..."，
// 值是结构体时解析出成员
func (g *GDBOutputUtil) ParseDataEvaluateOutput(record *gdbmi.Record, variable *debugger.Variable) bool {
	if record.Class != "done" {
		return false
	}
	index := strings.Index(record.Line, "value=")
	if index < 0 {
		return false
	}
	_, ok := gdbmi.ParseVariableValue(record.Line, index, variable)
	return ok
}

// CheckIsAddress 判断变量值是否为指针
func (g *GDBOutputUtil) CheckIsAddress(value string) bool {
	// 识别c++中的智能指针
	if strings.HasPrefix(value, "std::unique_ptr") ||
		strings.HasPrefix(value, "std::shared_ptr") ||
		strings.HasPrefix(value, "std::weak_ptr") {
		return true
	}
	// (Item *) 0x555555602260 这种带类型前缀的指针
	if strings.HasPrefix(value, "(") {
		if index := strings.Index(value, ") "); index >= 0 {
			value = value[index+2:]
		}
	}
	a := strings.Split(value, " ")
	return addressRegexp.MatchString(a[0])
}
