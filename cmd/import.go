/*
Copyright © 2025 Ambor <saltbo@foxmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	importInputKey = "backup.import.input"
	importGzipKey  = "backup.import.gzip"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "从 JSON 备份恢复训练数据",
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		ctx := cmd.Context()

		service, cleanup, err := newBackupService()
		if err != nil {
			return fmt.Errorf("加载配置失败: %w", err)
		}
		defer cleanup()

		inputPath := viper.GetString(importInputKey)
		if inputPath == "" {
			return fmt.Errorf("必须指定备份文件路径 (--input)")
		}

		var reader io.Reader
		closeFns := []func() error{}
		if inputPath == "-" {
			reader = cmd.InOrStdin()
		} else {
			file, err := os.Open(inputPath)
			if err != nil {
				return fmt.Errorf("打开备份文件失败: %w", err)
			}
			reader = file
			closeFns = append(closeFns, file.Close)
		}

		if viper.GetBool(importGzipKey) || strings.HasSuffix(inputPath, ".gz") {
			gz, err := gzip.NewReader(reader)
			if err != nil {
				return fmt.Errorf("读取 gzip 备份失败: %w", err)
			}
			reader = gz
			closeFns = append([]func() error{gz.Close}, closeFns...)
		}

		defer func() {
			for _, closer := range closeFns {
				if cerr := closer(); cerr != nil && err == nil {
					err = cerr
				}
			}
		}()

		if err := service.Import(ctx, reader); err != nil {
			return fmt.Errorf("导入备份失败: %w", err)
		}

		cmd.Println("导入完成")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringP("input", "i", "", "备份文件路径，使用 - 表示标准输入")
	importCmd.Flags().Bool("gzip", false, "输入为 gzip 压缩格式")

	bindFlagToViper(importInputKey, importCmd.Flags().Lookup("input"))
	bindFlagToViper(importGzipKey, importCmd.Flags().Lookup("gzip"))
}
