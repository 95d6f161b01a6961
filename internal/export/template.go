package export

// 打印与量高共用同一套模板，离屏量高看到的标记、字体与宽度
// 和打印页完全一致。section 内部的纵向间距只用 padding：
// 折叠的 margin 对 getBoundingClientRect 不可见，会让分页偏离打印结果。

const printTemplateString = `
<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<style>
{{template "base_css" .}}
@page {
  size: {{.WidthMm}}mm {{.HeightMm}}mm;
  margin: 0;
}
html, body {
  margin: 0;
  padding: 0;
  background: white;
}
.page {
  width: {{.PageWidthPx}}px;
  height: {{.PageHeightPx}}px;
  padding: {{.PaddingPx}}px;
  box-sizing: border-box;
  background: white;
  overflow: hidden;
  page-break-after: always;
}
.page:last-child {
  page-break-after: auto;
}
@media print {
  * {
    -webkit-print-color-adjust: exact !important;
    print-color-adjust: exact !important;
  }
}
</style>
</head>
<body>
{{range .Pages}}
<div class="page">
{{if .ShowHeader}}{{template "header" .Header}}{{end}}
{{range .Sections}}{{template "section" .}}{{end}}
</div>
{{end}}
</body>
</html>
`

const measureTemplateString = `
<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<style>
{{template "base_css" .}}
html, body {
  margin: 0;
  padding: 0;
  background: white;
}
.sheet {
  width: {{.ContentWidthPx}}px;
}
</style>
</head>
<body>
<div class="sheet">
{{template "header" .Header}}
{{range .Sections}}{{template "section" .}}{{end}}
</div>
</body>
</html>
`

const baseCSSTemplateString = `
{{define "base_css"}}
body {
  font-family: Arial, Helvetica, sans-serif;
  font-size: 10.5pt;
  line-height: 1.45;
  color: #1f2328;
}
p {
  margin: 0;
}
ul, ol {
  margin: 0;
  padding-left: 18px;
}
a {
  color: #1f2328;
}
.cv-header {
  padding-bottom: 14px;
}
.cv-name {
  font-size: 20pt;
  font-weight: 700;
  line-height: 1.2;
}
.cv-contact {
  font-size: 9pt;
  color: #4b5158;
  padding-top: 4px;
}
.cv-section {
  padding: 7px 0;
}
.cv-section-title {
  font-size: 11.5pt;
  font-weight: 700;
  margin: 0;
  padding-bottom: 4px;
  border-bottom: 1px solid #d3d7dc;
}
.cv-item {
  padding-top: 6px;
}
.cv-item-head {
  display: flex;
  justify-content: space-between;
  gap: 8px;
}
.cv-item-role {
  font-weight: 600;
}
.cv-item-dates {
  color: #4b5158;
  white-space: nowrap;
}
.cv-lang {
  display: flex;
  justify-content: space-between;
  padding-top: 4px;
}
{{end}}
`

const headerTemplateString = `
{{define "header"}}
<header class="cv-header" id="cv-header">
  <div class="cv-name">{{.FirstName}} {{.LastName}}</div>
  <div class="cv-contact">{{join .City .Phone .Email}}</div>
</header>
{{end}}
`

const sectionTemplateString = `
{{define "section"}}
<section class="cv-section" data-id="{{.ID}}">
  <h2 class="cv-section-title">{{.Title}}</h2>
  {{if or (eq .Kind "summary") (eq .Kind "custom")}}
  <div class="cv-item">{{.Content | safeHTML}}</div>
  {{else if eq .Kind "experience"}}
  {{range .Experience}}
  <div class="cv-item">
    <div class="cv-item-head">
      <span class="cv-item-role">{{.Role}}{{if and .Role .Company}}, {{end}}{{.Company}}</span>
      <span class="cv-item-dates">{{.StartDate}}{{if and .StartDate .EndDate}} - {{end}}{{.EndDate}}</span>
    </div>
    <div>{{.Description | safeHTML}}</div>
  </div>
  {{end}}
  {{else if eq .Kind "education"}}
  {{range .Education}}
  <div class="cv-item">
    <div class="cv-item-head">
      <span class="cv-item-role">{{.Degree}}{{if and .Degree .School}}, {{end}}{{.School}}</span>
      <span class="cv-item-dates">{{.StartDate}}{{if and .StartDate .EndDate}} - {{end}}{{.EndDate}}</span>
    </div>
    <div>{{.Description | safeHTML}}</div>
  </div>
  {{end}}
  {{else if eq .Kind "languages"}}
  {{range .Languages}}
  <div class="cv-lang">
    <span>{{.Name}}</span>
    <span class="cv-item-dates">{{.Level}}</span>
  </div>
  {{end}}
  {{end}}
</section>
{{end}}
`
