// Copyright 2023 uhppoted@twyst.co.za. All rights reserved.
// Use of this source code is governed by an MIT-style license
// that can be found in the LICENSE file.

/*
Package uhppoted-app-links cross-references the documents in a Google Drive folder with the rows of a Google Sheets
worksheet and writes the document links back into the worksheet.

Documents are matched on a numeric identifier at the start of the file name (e.g. 0042#scan.pdf), which is compared
with the worksheet identifier column and then with the (optional) phone number column. The links for all the matched
documents are written to an empty column in a single batch update.

uhppoted-app-links supports the following commands:

  - authorise, to authorise application access to Google Drive and Google Sheets
  - folders, to list the Google Drive folders and the number of documents in each
  - spreadsheets, to list the Google Sheets spreadsheets
  - columns, to list the worksheets in a spreadsheet or the columns in a worksheet
  - search, to match the documents in a folder with the rows of a worksheet
  - link, to write the links for the matched documents to a worksheet column
  - serve, to run a local HTTP session server for the search and link operations
*/
package links
